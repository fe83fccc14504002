package rpio

import (
	"fmt"
	"unsafe"
)

const (
	memDevice = "/dev/mem"
	memLength = 4096
)

// memSys is the set of OS calls needed to map the gpio registers.
type memSys interface {
	open(path string) (fd int, err error)
	mmap(fd int, offset int64, length int) ([]byte, error)
	munmap(b []byte) error
	close(fd int) error
}

// sys is replaced in tests.
var sys memSys = osSys{}

// window owns the mapped register block. It is only ever reached
// through word indexed loads and stores.
type window struct {
	mem8 []uint8
	mem  []uint32
}

// mapWindow opens the physical memory device, maps length bytes at the
// physical address addr and closes the descriptor again.
func mapWindow(addr uint64) (*window, error) {
	fd, err := sys.open(memDevice)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", memDevice, ErrDeviceOpen, err)
	}

	// FD can be closed after memory mapping
	defer sys.close(fd)

	mem8, err := sys.mmap(fd, int64(addr), memLength)
	if err != nil {
		return nil, fmt.Errorf("%s at %#x: %w: %w", memDevice, addr, ErrMemoryMap, err)
	}
	if len(mem8) < memLength {
		_ = sys.munmap(mem8)
		return nil, fmt.Errorf("%s at %#x: short mapping of %d bytes: %w",
			memDevice, addr, len(mem8), ErrMemoryMap)
	}

	return &window{
		mem8: mem8,
		mem:  unsafe.Slice((*uint32)(unsafe.Pointer(&mem8[0])), len(mem8)/4),
	}, nil
}

func (w *window) load(word int) uint32 {
	return w.mem[word]
}

func (w *window) store(word int, v uint32) {
	w.mem[word] = v
}

// unmap releases the mapping. It is a no-op once the window is gone.
func (w *window) unmap() error {
	if w == nil || w.mem8 == nil {
		return nil
	}
	mem8 := w.mem8
	w.mem8 = nil
	w.mem = nil
	return sys.munmap(mem8)
}
