//go:build linux

package rpio

import "golang.org/x/sys/unix"

type osSys struct{}

func (osSys) open(path string) (int, error) {
	return unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
}

func (osSys) mmap(fd int, offset int64, length int) ([]byte, error) {
	return unix.Mmap(fd, offset, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
}

func (osSys) munmap(b []byte) error {
	return unix.Munmap(b)
}

func (osSys) close(fd int) error {
	return unix.Close(fd)
}
