package entscan

import (
	"context"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/lab47/entscan/pkg/entropy"
	"github.com/pkg/errors"
)

const (
	BlockSize = 2048

	// RandomThreshold is the fraction of a sector's maximum entropy
	// (8 bits per byte) it has to exceed to look random.
	RandomThreshold = 0.98
)

// PartialPolicy decides what happens to a trailing sector shorter than the
// block size.
type PartialPolicy int

const (
	// PartialProcess measures the trailing bytes as a sector of their own,
	// classified against the maximum for their actual size.
	PartialProcess PartialPolicy = iota

	// PartialStrict fails the scan with ErrShortBlock.
	PartialStrict
)

func (p PartialPolicy) String() string {
	switch p {
	case PartialProcess:
		return "process"
	case PartialStrict:
		return "strict"
	default:
		return "unknown"
	}
}

func ParsePartialPolicy(s string) (PartialPolicy, error) {
	switch s {
	case "", "process":
		return PartialProcess, nil
	case "strict":
		return PartialStrict, nil
	default:
		return 0, errors.Errorf("unknown partial block policy: %q", s)
	}
}

var ErrShortBlock = errors.New("read failed: short block")

// Report is the result of measuring one sector.
type Report struct {
	Sector int
	Size   int
	Bits   float64
	Random bool
}

type Summary struct {
	Sectors int
	Random  int
	Bytes   int64
	Partial bool
}

type Scanner struct {
	log hclog.Logger
	o   opts
}

func NewScanner(log hclog.Logger, options ...Option) *Scanner {
	o := defaultOpts()

	for _, opt := range options {
		opt(&o)
	}

	if o.blockSize <= 0 {
		o.blockSize = BlockSize
	}

	return &Scanner{
		log: log,
		o:   o,
	}
}

func (s *Scanner) BlockSize() int {
	return s.o.blockSize
}

// Threshold returns the number of bits a sector of size bytes must exceed
// to be considered random.
func (s *Scanner) Threshold(size int) float64 {
	return s.o.threshold * float64(size*8)
}

// LooksRandom classifies a sector. Empty sectors are never random.
func (s *Scanner) LooksRandom(bits float64, size int) bool {
	if size == 0 {
		return false
	}

	return bits > s.Threshold(size)
}

func (s *Scanner) ScanFile(ctx context.Context, path string, rep Reporter) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, errors.Wrapf(err, "open %s", path)
	}

	defer f.Close()

	adviseSequential(f)

	s.log.Debug("scanning file", "path", path, "block-size", s.o.blockSize, "partial-blocks", s.o.partial)

	sum, err := s.Scan(ctx, f, rep)
	if err != nil {
		return sum, err
	}

	s.log.Debug("scan complete",
		"path", path,
		"sectors", sum.Sectors,
		"random", sum.Random,
		"bytes", sum.Bytes,
	)

	return sum, nil
}

func (s *Scanner) Scan(ctx context.Context, r io.Reader, rep Reporter) (Summary, error) {
	var (
		sum    Summary
		buf    = make([]byte, s.o.blockSize)
		sector int
	)

	for {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		n, err := io.ReadFull(r, buf)
		switch err {
		case nil:
			// full sector
		case io.EOF:
			return sum, nil
		case io.ErrUnexpectedEOF:
			if s.o.partial == PartialStrict {
				s.log.Error("trailing sector is short", "sector", sector, "size", n, "block-size", s.o.blockSize)
				return sum, errors.Wrapf(ErrShortBlock, "sector %d has %d of %d bytes", sector, n, s.o.blockSize)
			}

			sum.Partial = true
		default:
			return sum, errors.Wrapf(err, "fread sector %d", sector)
		}

		report := s.measure(sector, buf[:n])

		sum.Sectors++
		sum.Bytes += int64(n)
		if report.Random {
			sum.Random++
		}

		if err := rep.Report(report); err != nil {
			return sum, errors.Wrapf(err, "report sector %d", sector)
		}

		if sum.Partial {
			return sum, nil
		}

		sector++
	}
}

func (s *Scanner) measure(sector int, block []byte) Report {
	var h entropy.Histogram
	h.Write(block)

	bits := h.Bits()

	if s.log.IsTrace() {
		s.log.Trace("measured sector", "sector", sector, "counted", h.Total(), "size", len(block), "bits", bits)
	}

	report := Report{
		Sector: sector,
		Size:   len(block),
		Bits:   bits,
		Random: s.LooksRandom(bits, len(block)),
	}

	sectorsScanned.Inc()
	bytesScanned.Add(float64(len(block)))
	if report.Random {
		sectorsRandom.Inc()
	}
	if len(block) > 0 {
		sectorEntropyRatio.Observe(bits / float64(len(block)*8))
	}

	return report
}
