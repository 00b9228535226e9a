package entscan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Reporter interface {
	Report(r Report) error
}

type ReporterFunc func(r Report) error

func (f ReporterFunc) Report(r Report) error {
	return f(r)
}

const randomMarker = "Looks random! "

// TextReporter writes one line per sector:
//
//	Looks random! Sector 3: entropy = 16204.139821
//
// The marker is only present on random sectors.
type TextReporter struct {
	W     io.Writer
	Color bool
}

var markerColor = func() *color.Color {
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c
}()

func (t *TextReporter) Report(r Report) error {
	var marker string

	if r.Random {
		marker = randomMarker
		if t.Color {
			marker = markerColor.Sprint(marker)
		}
	}

	_, err := fmt.Fprintf(t.W, "%sSector %d: entropy = %f\n", marker, r.Sector, r.Bits)
	return err
}
