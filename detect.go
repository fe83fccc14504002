package rpio

import (
	"bytes"
	"fmt"
	"os"
)

const compatiblePath = "/proc/device-tree/compatible"

// Device tree compatible strings of each chip generation.
var socCompatible = []struct {
	name string
	chip int
}{
	{"brcm,bcm2835", 1},
	{"brcm,bcm2836", 2},
	{"brcm,bcm2837", 3},
	{"brcm,bcm2711", 4},
	{"brcm,bcm2712", 5},
}

// DetectChipVersion reads the device tree of the running board and
// returns the chip generation to pass to Open.
func DetectChipVersion() (int, error) {
	b, err := os.ReadFile(compatiblePath)
	if err != nil {
		return 0, fmt.Errorf("%s: %w: %w", compatiblePath, ErrUnknownChip, err)
	}
	return ParseCompatible(b)
}

// ParseCompatible maps the NUL separated device tree compatible list to
// a chip generation. Board entries such as raspberrypi,4-model-b do not
// match any SoC and are passed over.
func ParseCompatible(b []byte) (int, error) {
	for _, entry := range bytes.Split(b, []byte{0}) {
		for _, soc := range socCompatible {
			if string(entry) == soc.name {
				return soc.chip, nil
			}
		}
	}
	return 0, fmt.Errorf("%q: %w", bytes.ReplaceAll(bytes.TrimRight(b, "\x00"), []byte{0}, []byte{' '}), ErrUnknownChip)
}
