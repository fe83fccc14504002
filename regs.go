package rpio

// Register word indices into the mapped window (32 bit words).
//
// The set, clear and level words are the bank 0 registers (GPSET0,
// GPCLR0, GPLEV0). Pins 32-53 live in bank 1 (words 8, 11, 14) on the
// hardware, but they are addressed here through bank 0 with pin%32 like
// the C code this library replaces. Only pins 0-31 are reliable for
// WriteLevel, ReadLevel and Toggle.
const (
	setReg   = 7
	clearReg = 10
	levelReg = 13

	pinMask uint32 = 7 // 0b111 - pinmode is 3 bits
	maxPin         = 53
)

func validPin(pin Pin) bool {
	return pin <= maxPin
}

// Function select register, 0 - 5 depending on pin
func fselWord(pin Pin) int {
	return int(pin) / 10
}

func fselShift(pin Pin) uint {
	return uint(pin%10) * 3
}

// withMode returns word with the function select field of pin replaced
// by mode. The other nine fields are left untouched.
func withMode(word uint32, pin Pin, mode Mode) uint32 {
	shift := fselShift(pin)
	return word&^(pinMask<<shift) | (uint32(mode)&pinMask)<<shift
}

// modeIn decodes the function select field of pin from word.
func modeIn(word uint32, pin Pin) Mode {
	return Mode((word >> fselShift(pin)) & pinMask)
}

func levelBit(pin Pin) uint32 {
	return 1 << (pin & 31)
}

// outputWord returns the word that drives pin to the requested level.
func outputWord(high bool) int {
	if high {
		return setReg
	}
	return clearReg
}
