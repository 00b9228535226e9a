//go:build linux

package entscan

import (
	"os"

	"golang.org/x/sys/unix"
)

func adviseSequential(f *os.File) {
	unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}
