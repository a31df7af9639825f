package mma8452q

import (
	"errors"
	"fmt"
)

// ErrNotStandby is returned when a configuration operation is attempted
// while the device is active. Call Standby first.
var ErrNotStandby = errors.New("mma8452q: device must be in standby to change configuration")

// WrongDeviceError is returned by NewI2C when the identity register does not
// read back as a MMA8452Q.
type WrongDeviceError struct {
	ID byte
}

func (e *WrongDeviceError) Error() string {
	return fmt.Sprintf("mma8452q: unexpected identity %#02x, want %#02x", e.ID, deviceID)
}
