// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mma8452q controls a NXP MMA8452Q 3-axis accelerometer over I²C.
//
// The device reports 12-bit acceleration samples at a selectable ±2g, ±4g or
// ±8g full-scale range, and can detect taps on each axis as well as the
// portrait/landscape orientation of the board. Configuration registers may
// only be written while the device is in standby; the driver sequences this
// during initialization and returns ErrNotStandby for configuration calls
// made while the device is active.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/MMA8452Q.pdf
//
// Application notes AN4072 (tap detection) and AN4068 (portrait/landscape
// detection) describe the fixed timing profiles used by the defaults.
package mma8452q
