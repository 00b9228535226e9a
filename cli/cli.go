package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/lab47/entscan"
	"github.com/lab47/entscan/pkg/entropy"
	"github.com/pkg/errors"
)

var ErrUsage = errors.New("wrong number of arguments")

type CLI struct {
	log  hclog.Logger
	out  io.Writer
	args []string
	cfg  *entscan.Config

	// Color highlights random sectors in the output.
	Color bool
}

func NewCLI(log hclog.Logger, out io.Writer, args []string) (*CLI, error) {
	c := &CLI{
		log:  log,
		out:  out,
		args: args,
		cfg:  entscan.DefaultConfig(),
	}

	// Fail on a bad configuration before touching the input.
	if _, err := c.cfg.Options(); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration")
	}

	return c, nil
}

func (c *CLI) usage() {
	fmt.Fprintf(c.out, "entropy <filename>\n")
	fmt.Fprintf(c.out, "<filename>\tfile to inspect\n")
}

// Run scans the file named by the only argument. The returned code is the
// process exit status.
func (c *CLI) Run(ctx context.Context) (code int, err error) {
	if len(c.args) != 1 {
		c.usage()
		return 1, ErrUsage
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		ie, ok := r.(*entropy.InvariantError)
		if !ok {
			panic(r)
		}

		code, err = 1, ie
	}()

	opts, err := c.cfg.Options()
	if err != nil {
		return 1, err
	}

	sc := entscan.NewScanner(c.log, opts...)

	_, err = sc.ScanFile(ctx, c.args[0], &entscan.TextReporter{
		W:     c.out,
		Color: c.Color,
	})
	if err != nil {
		return 1, err
	}

	return 0, nil
}
