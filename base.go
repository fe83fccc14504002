package rpio

import "fmt"

// Memory offsets for gpio, see the BCM2835 ARM Peripherals datasheet.
// The gpio controller sits at the same offset on every generation,
// only the peripheral base moves.
const (
	bcm2835Base = 0x20000000   // Pi 1, Zero
	bcm2836Base = 0x3F000000   // Pi 2, 3
	bcm2711Base = 0xFE000000   // Pi 4
	bcm2712Base = 0x1F000D0000 // Pi 5

	gpioOffset = 0x200000
)

// PeripheralBase returns the physical peripheral base and the gpio
// controller offset for the given chip generation (1-5).
func PeripheralBase(chip int) (base, offset uint64, err error) {
	switch chip {
	case 1:
		base = bcm2835Base
	case 2, 3:
		base = bcm2836Base
	case 4:
		base = bcm2711Base
	case 5:
		base = bcm2712Base
	default:
		return 0, 0, fmt.Errorf("chip %d: %w", chip, ErrUnsupportedChipVersion)
	}
	return base, gpioOffset, nil
}
