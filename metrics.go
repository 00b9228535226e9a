package entscan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sectorsScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "entscan_sectors_scanned",
		Help: "The total number of sectors measured",
	})

	sectorsRandom = promauto.NewCounter(prometheus.CounterOpts{
		Name: "entscan_sectors_random",
		Help: "The total number of sectors that looked random",
	})

	bytesScanned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "entscan_bytes_scanned",
		Help: "The total number of bytes measured",
	})

	sectorEntropyRatio = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "entscan_sector_entropy_ratio",
		Help:    "Sector entropy as a fraction of the maximum for its size",
		Buckets: []float64{0.1, 0.25, 0.5, 0.75, 0.9, 0.95, 0.98, 0.99, 1},
	})
)
