//go:build !linux

package entscan

import "os"

func adviseSequential(f *os.File) {}
