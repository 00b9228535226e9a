package entscan

type opts struct {
	blockSize int
	threshold float64
	partial   PartialPolicy
}

func defaultOpts() opts {
	return opts{
		blockSize: BlockSize,
		threshold: RandomThreshold,
		partial:   PartialProcess,
	}
}

type Option func(o *opts)

// WithBlockSize sets the number of bytes per sector.
func WithBlockSize(sz int) Option {
	return func(o *opts) {
		o.blockSize = sz
	}
}

// WithThreshold sets the fraction of the maximum possible entropy a sector
// must exceed to be reported as random.
func WithThreshold(f float64) Option {
	return func(o *opts) {
		o.threshold = f
	}
}

func WithPartialBlocks(p PartialPolicy) Option {
	return func(o *opts) {
		o.partial = p
	}
}
