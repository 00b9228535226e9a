package entropy

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/require"
)

func TestEntropy(t *testing.T) {
	t.Run("empty blocks are low", func(t *testing.T) {
		r := require.New(t)

		e := NewEstimator()

		e.Write(make([]byte, 4096))

		r.Equal(0.0, e.Value())
	})

	t.Run("random blocks are high", func(t *testing.T) {
		r := require.New(t)

		e := NewEstimator()

		data := make([]byte, 4096)

		io.ReadFull(rand.Reader, data)

		e.Write(data)

		r.Greater(e.Value(), 5.0)
	})

	t.Run("sparse blocks are low", func(t *testing.T) {
		r := require.New(t)

		e := NewEstimator()

		data := make([]byte, 4096)

		copy(data, []byte("hello"))

		e.Write(data)

		r.Less(e.Value(), 1.0)
	})

	t.Run("uniform blocks are low", func(t *testing.T) {
		r := require.New(t)

		e := NewEstimator()

		data := make([]byte, 4096)

		for i := range data {
			data[i] = byte(i) % 2
		}

		e.Write(data)

		r.Less(e.Value(), 2.0)
	})
}

func TestHistogramBits(t *testing.T) {
	t.Run("a repeated byte carries no information", func(t *testing.T) {
		r := require.New(t)

		for _, b := range []byte{0, 'A', 0xff} {
			data := make([]byte, 2048)
			for i := range data {
				data[i] = b
			}

			r.Equal(0.0, Measure(data))
		}
	})

	t.Run("all byte values equally often is 8 bits per byte", func(t *testing.T) {
		r := require.New(t)

		for _, n := range []int{256, 2048, 4096} {
			data := make([]byte, n)
			for i := range data {
				data[i] = byte(i)
			}

			r.InDelta(float64(n*8), Measure(data), 1e-6)
		}
	})

	t.Run("two values equally often is one bit per byte", func(t *testing.T) {
		r := require.New(t)

		data := make([]byte, 2048)
		for i := range data {
			data[i] = byte(i) % 2
		}

		r.InDelta(2048.0, Measure(data), 1e-9)
	})

	t.Run("scales with the per byte value", func(t *testing.T) {
		r := require.New(t)

		data := make([]byte, 2048)
		io.ReadFull(rand.Reader, data)

		var h Histogram
		h.Write(data)

		r.InDelta(h.Value()*2048, h.Bits(), 1e-6)
	})

	t.Run("empty histogram is zero", func(t *testing.T) {
		r := require.New(t)

		var h Histogram

		r.Equal(0.0, h.Bits())
		r.Equal(0.0, h.Value())
		r.Equal(0.0, Measure(nil))
	})

	t.Run("reset then write is repeatable", func(t *testing.T) {
		r := require.New(t)

		data := make([]byte, 2048)
		io.ReadFull(rand.Reader, data)

		var h Histogram

		h.Reset()
		h.Write(data)
		first := h.Bits()

		h.Reset()
		h.Write(data)
		second := h.Bits()

		r.Equal(first, second)
	})

	t.Run("writes accumulate until reset", func(t *testing.T) {
		r := require.New(t)

		data := make([]byte, 2048)
		io.ReadFull(rand.Reader, data)

		var h Histogram
		h.Write(data[:100])
		h.Write(data[100:1000])
		h.Write(nil)
		h.Write(data[1000:])

		r.Equal(uint64(2048), h.Total())
		r.Equal(Measure(data), h.Bits())

		h.Reset()
		r.Equal(uint64(0), h.Total())
		r.Equal(0.0, h.Bits())
	})

	t.Run("counts add up to the total", func(t *testing.T) {
		r := require.New(t)

		data := make([]byte, 3000)
		io.ReadFull(rand.Reader, data)

		var h Histogram
		h.Write(data)

		var sum uint64
		for i := 0; i < 256; i++ {
			sum += h.Count(byte(i))
		}

		r.Equal(h.Total(), sum)
		r.Equal(uint64(len(data)), sum)
		r.GreaterOrEqual(h.Bits(), 0.0)
	})

	t.Run("mismatched counts panic", func(t *testing.T) {
		r := require.New(t)

		var h Histogram
		h.Write([]byte("hello"))
		h.frequencies['z']++

		defer func() {
			v := recover()
			r.NotNil(v)

			ie, ok := v.(*InvariantError)
			r.True(ok)
			r.Equal(uint64(6), ie.Counted)
			r.Equal(uint64(5), ie.Total)
			r.Contains(ie.Error(), "internal error")
		}()

		h.Bits()
	})
}

func BenchmarkEntropy(b *testing.B) {
	e := NewEstimator()

	data := make([]byte, 4096)

	for i := range data {
		data[i] = byte(i)
	}

	for i := 0; i < b.N; i++ {
		e.Write(data)
	}
}

func BenchmarkMeasure(b *testing.B) {
	data := make([]byte, 2048)

	io.ReadFull(rand.Reader, data)

	for i := 0; i < b.N; i++ {
		Measure(data)
	}
}

func BenchmarkEntropyToLZ4(b *testing.B) {
	data := make([]byte, 4096)

	for i := range data {
		data[i] = byte(i)
	}

	dest := make([]byte, 4096)
	for i := 0; i < b.N; i++ {
		lz4.CompressBlock(data, dest, nil)
	}
}
