package rpio

import (
	"errors"
	"testing"
)

func TestPeripheralBase(t *testing.T) {
	tests := []struct {
		chip int
		base uint64
	}{
		{1, 0x20000000},
		{2, 0x3F000000},
		{3, 0x3F000000},
		{4, 0xFE000000},
		{5, 0x1F000D0000},
	}
	for _, test := range tests {
		base, offset, err := PeripheralBase(test.chip)
		if err != nil {
			t.Errorf("chip %d: %v", test.chip, err)
			continue
		}
		if base != test.base || offset != 0x200000 {
			t.Errorf("chip %d: base %#x offset %#x", test.chip, base, offset)
		}
	}

	for _, chip := range []int{-3, 0, 6, 7, 2837} {
		if _, _, err := PeripheralBase(chip); !errors.Is(err, ErrUnsupportedChipVersion) {
			t.Errorf("chip %d: error = %v", chip, err)
		}
	}
}
