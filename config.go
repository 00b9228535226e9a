package entscan

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pkg/errors"
)

type Config struct {
	BlockSize     int     `hcl:"block_size,optional"`
	Threshold     float64 `hcl:"threshold,optional"`
	PartialBlocks string  `hcl:"partial_blocks,optional"`
}

func DefaultConfig() *Config {
	return &Config{
		BlockSize:     BlockSize,
		Threshold:     RandomThreshold,
		PartialBlocks: PartialProcess.String(),
	}
}

// LoadConfig reads an HCL file. Attributes missing from the file keep
// their default values.
func LoadConfig(path string) (*Config, error) {
	var ctx hcl.EvalContext

	cfg := DefaultConfig()

	err := hclsimple.DecodeFile(path, &ctx, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Options() ([]Option, error) {
	if c.BlockSize <= 0 {
		return nil, errors.Errorf("block_size must be positive, got %d", c.BlockSize)
	}

	if c.Threshold <= 0 || c.Threshold > 1 {
		return nil, errors.Errorf("threshold must be in (0, 1], got %v", c.Threshold)
	}

	partial, err := ParsePartialPolicy(c.PartialBlocks)
	if err != nil {
		return nil, err
	}

	return []Option{
		WithBlockSize(c.BlockSize),
		WithThreshold(c.Threshold),
		WithPartialBlocks(partial),
	}, nil
}
