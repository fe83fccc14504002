package rpio

import "errors"

// Configuration errors are reported before any resource is touched.
// Resource errors wrap the underlying OS error as well.
var (
	ErrUnsupportedChipVersion = errors.New("unsupported chip version")
	ErrInvalidPin             = errors.New("invalid pin number")
	ErrInvalidMode            = errors.New("invalid pin mode")
	ErrUnknownChip            = errors.New("unknown chip")

	ErrDeviceOpen = errors.New("cannot open physical memory device - are you root?")
	ErrMemoryMap  = errors.New("cannot map gpio registers")
)
