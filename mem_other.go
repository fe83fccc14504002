//go:build !linux

package rpio

import (
	"errors"
	"runtime"
)

var errNoDevMem = errors.New("physical memory mapping is not supported on " + runtime.GOOS)

type osSys struct{}

func (osSys) open(string) (int, error)             { return -1, errNoDevMem }
func (osSys) mmap(int, int64, int) ([]byte, error) { return nil, errNoDevMem }
func (osSys) munmap([]byte) error                  { return errNoDevMem }
func (osSys) close(int) error                      { return errNoDevMem }
