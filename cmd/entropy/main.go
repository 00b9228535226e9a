package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/lab47/entscan/cli"
)

func main() {
	log := hclog.New(&hclog.LoggerOptions{
		Name:   "entropy",
		Level:  hclog.Info,
		Output: os.Stdout,
		Color:  hclog.AutoColor,

		ColorHeaderAndFields: true,
	})

	c, err := cli.NewCLI(log, os.Stdout, os.Args[1:])
	if err != nil {
		log.Error("error creating CLI", "error", err)
		os.Exit(1)
		return
	}

	c.Color = !color.NoColor

	code, err := c.Run(context.Background())
	if err != nil {
		log.Error("error running CLI", "error", err)
		os.Exit(1)
	}

	os.Exit(code)
}
