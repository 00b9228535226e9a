// Compute Shannon Entropy of a byte stream
// H = - Σ P(x) * log P(x)

package entropy

import (
	"fmt"
	"io"
	"math"

	"github.com/lab47/mode"
)

// Estimator is the per-symbol view of a histogram, in bits per byte.
type Estimator interface {
	io.Writer
	Value() float64
	Reset()
}

// Histogram counts byte values. The zero value is ready to use.
type Histogram struct {
	frequencies [256]uint64
	total       uint64
}

var _ Estimator = (*Histogram)(nil)

func NewEstimator() Estimator {
	return &Histogram{}
}

func (h *Histogram) Reset() {
	clear(h.frequencies[:])
	h.total = 0
}

func (h *Histogram) Write(data []byte) (int, error) {
	for _, b := range data {
		h.frequencies[b]++
	}
	h.total += uint64(len(data))

	if mode.Debug() {
		h.check()
	}

	return len(data), nil
}

func (h *Histogram) Total() uint64 {
	return h.total
}

func (h *Histogram) Count(b byte) uint64 {
	return h.frequencies[b]
}

// Value returns the entropy per byte, between 0 and 8.
func (h *Histogram) Value() float64 {
	if h.total == 0 {
		return 0
	}

	var entropy float64
	for _, count := range h.frequencies {
		if count > 0 {
			freq := float64(count) / float64(h.total)
			entropy += freq * math.Log2(freq)
		}
	}
	return -entropy
}

// Bits returns the total entropy of everything written since the last
// Reset, in bits. It is Value scaled by the number of bytes, so a block of
// n bytes tops out at 8n.
func (h *Histogram) Bits() float64 {
	if h.total == 0 {
		return 0
	}

	var (
		count uint64
		plogp float64
		all   = float64(h.total)
	)

	for _, c := range h.frequencies {
		if c == 0 {
			continue
		}

		p := float64(c) / all
		plogp -= p * math.Log(p)
		count += c
	}

	if count != h.total {
		panic(&InvariantError{Counted: count, Total: h.total})
	}

	plogp /= math.Ln2

	return all * plogp
}

func (h *Histogram) check() {
	var count uint64
	for _, c := range h.frequencies {
		count += c
	}

	if count != h.total {
		panic(&InvariantError{Counted: count, Total: h.total})
	}
}

// Measure returns the total entropy of block in bits.
func Measure(block []byte) float64 {
	var h Histogram
	h.Write(block)
	return h.Bits()
}

// InvariantError is the panic value used when the histogram counts no
// longer add up to the number of bytes written.
type InvariantError struct {
	Counted uint64
	Total   uint64
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal error: histogram counts %d bytes, expected %d", e.Counted, e.Total)
}
