/*

Package rpio provides GPIO access on the Raspberry Pi family of boards by
mapping the gpio controller registers straight out of /dev/mem, without
any need for external c libraries or a kernel driver.

Supports simple operations such as:
- Pin mode (input/output/alt0-alt5)
- Pin write (high/low)
- Pin read (high/low)

Example of use:

	gpio, err := rpio.Open(3)
	if err != nil {
		return err
	}
	defer gpio.Close()

	gpio.SetMode(17, rpio.Output)

	for {
		gpio.Toggle(17)
		time.Sleep(time.Second)
	}

The library uses the raw BCM pin numbers, not the physical header
positions. Chip generations map to boards as follows:

	+------+----------+---------------+
	| Chip | SoC      | Boards        |
	+------+----------+---------------+
	|   1  | BCM2835  | Pi 1, Zero    |
	|   2  | BCM2836  | Pi 2          |
	|   3  | BCM2837  | Pi 3, Zero 2  |
	|   4  | BCM2711  | Pi 4, CM4     |
	|   5  | BCM2712  | Pi 5          |
	+------+----------+---------------+

Opening /dev/mem needs root (or CAP_SYS_RAWIO). Write and read only
address the first register bank, so only pins 0-31 can be driven or
sampled even though pins up to 53 are accepted.

See the BCM2835 ARM Peripherals datasheet for full details of the controller:
https://www.raspberrypi.org/documentation/hardware/raspberrypi/bcm2835/BCM2835-ARM-Peripherals.pdf

*/
package rpio

import (
	"fmt"
	"runtime"
)

type Mode uint8
type Pin uint8
type MapState uint8

// Pin modes. The values are the function select codes of the hardware,
// alt functions are not numbered in order.
const (
	Input  Mode = 0
	Output Mode = 1
	Alt0   Mode = 4
	Alt1   Mode = 5
	Alt2   Mode = 6
	Alt3   Mode = 7
	Alt4   Mode = 3
	Alt5   Mode = 2
)

var modeNames = [...]string{
	Input:  "input",
	Output: "output",
	Alt0:   "alt0",
	Alt1:   "alt1",
	Alt2:   "alt2",
	Alt3:   "alt3",
	Alt4:   "alt4",
	Alt5:   "alt5",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if name == s {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrInvalidMode)
}

// Register window lifecycle
const (
	Unmapped MapState = iota
	Mapped
	Released
)

func (s MapState) String() string {
	switch s {
	case Unmapped:
		return "unmapped"
	case Mapped:
		return "mapped"
	case Released:
		return "released"
	}
	return fmt.Sprintf("MapState(%d)", uint8(s))
}

// Controller owns the mapped gpio register window of one chip.
//
// Every register access is followed by runtime.KeepAlive so the
// finalizer cannot unmap the window while a pin call is in flight.
//
// A Controller is not safe for concurrent use. SetMode is a
// read-modify-write of a register shared by ten pins, and Close must
// happen after every other call has returned.
type Controller struct {
	chip   int
	base   uint64
	offset uint64
	state  MapState
	win    *window
}

// Open resolves the register address of the given chip generation and
// memory maps the gpio controller from /dev/mem.
func Open(chip int) (*Controller, error) {
	base, offset, err := PeripheralBase(chip)
	if err != nil {
		return nil, err
	}

	c := &Controller{
		chip:   chip,
		base:   base,
		offset: offset,
	}

	if c.win, err = mapWindow(base + offset); err != nil {
		return nil, err
	}
	c.state = Mapped

	// Unmap the registers if the caller drops the controller without
	// calling Close.
	runtime.SetFinalizer(c, (*Controller).release)

	return c, nil
}

// Close unmaps the gpio registers. It may be called any number of times.
func (c *Controller) Close() error {
	if c == nil {
		return nil
	}
	if c.state == Mapped {
		runtime.SetFinalizer(c, nil)
	}
	c.release()
	return nil
}

func (c *Controller) release() {
	if c.state != Mapped {
		return
	}
	c.state = Released
	// Nothing can be done about a failed munmap, the mapping is gone
	// from our side either way.
	_ = c.win.unmap()
}

// Chip returns the chip generation the controller was opened for.
func (c *Controller) Chip() int {
	return c.chip
}

// Base returns the physical address of the mapped gpio registers.
func (c *Controller) Base() uint64 {
	return c.base + c.offset
}

func (c *Controller) State() MapState {
	return c.state
}

// SetMode sets the function of a given pin (Input, Output or Alt0-Alt5).
func (c *Controller) SetMode(pin Pin, mode Mode) error {
	if !validPin(pin) {
		return fmt.Errorf("pin %d: %w", pin, ErrInvalidPin)
	}
	if uint32(mode) > pinMask {
		return fmt.Errorf("pin %d: %w", pin, ErrInvalidMode)
	}

	fsel := fselWord(pin)
	c.win.store(fsel, withMode(c.win.load(fsel), pin, mode))
	runtime.KeepAlive(c)
	return nil
}

// GetMode reads back the current function of a given pin.
func (c *Controller) GetMode(pin Pin) (Mode, error) {
	if !validPin(pin) {
		return Input, fmt.Errorf("pin %d: %w", pin, ErrInvalidPin)
	}
	mode := modeIn(c.win.load(fselWord(pin)), pin)
	runtime.KeepAlive(c)
	return mode, nil
}

// WriteLevel drives a given pin high or low by setting its bit in the
// set or clear register respectively. The hardware ignores zero bits,
// so no read is needed.
func (c *Controller) WriteLevel(pin Pin, high bool) error {
	if !validPin(pin) {
		return fmt.Errorf("pin %d: %w", pin, ErrInvalidPin)
	}
	c.win.store(outputWord(high), levelBit(pin))
	runtime.KeepAlive(c)
	return nil
}

// ReadLevel reports whether a given pin is currently high.
func (c *Controller) ReadLevel(pin Pin) (bool, error) {
	if !validPin(pin) {
		return false, fmt.Errorf("pin %d: %w", pin, ErrInvalidPin)
	}
	high := c.win.load(levelReg)&levelBit(pin) != 0
	runtime.KeepAlive(c)
	return high, nil
}

// Toggle a pin state (high -> low -> high)
func (c *Controller) Toggle(pin Pin) error {
	high, err := c.ReadLevel(pin)
	if err != nil {
		return err
	}
	return c.WriteLevel(pin, !high)
}
