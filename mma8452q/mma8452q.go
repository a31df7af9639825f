// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8452q

import (
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// DefaultAddr is the I²C address with the SA0 pin pulled high. With SA0 low
// the device answers at 0x1C.
const DefaultAddr uint16 = 0x1D

// Scale selects the full-scale range of the accelerometer.
type Scale byte

const (
	Scale2G Scale = iota // ±2g
	Scale4G              // ±4g
	Scale8G              // ±8g
)

// scaleBits maps a Scale to the FS field of regXYZDataCfg.
var scaleBits = map[Scale]byte{
	Scale2G: 0x00,
	Scale4G: 0x01,
	Scale8G: 0x02,
}

// scaleFactor maps a Scale to the full-scale magnitude in g.
var scaleFactor = map[Scale]float64{
	Scale2G: 2,
	Scale4G: 4,
	Scale8G: 8,
}

func (s Scale) String() string {
	if f, ok := scaleFactor[s]; ok {
		return fmt.Sprintf("±%gg", f)
	}
	return fmt.Sprintf("Scale(%d)", byte(s))
}

// DataRate selects the output data rate, the frequency at which the device
// refreshes its output registers.
type DataRate byte

const (
	Rate800Hz DataRate = iota
	Rate400Hz
	Rate200Hz
	Rate100Hz
	Rate50Hz
	Rate12Hz5 // 12.5Hz
	Rate6Hz25 // 6.25Hz
	Rate1Hz56 // 1.56Hz
)

// dataRateBits maps a DataRate to the DR field of regCtrl1.
var dataRateBits = map[DataRate]byte{
	Rate800Hz: 0x00,
	Rate400Hz: 0x08,
	Rate200Hz: 0x10,
	Rate100Hz: 0x18,
	Rate50Hz:  0x20,
	Rate12Hz5: 0x28,
	Rate6Hz25: 0x30,
	Rate1Hz56: 0x38,
}

// TapDisabled is the per-axis threshold value that disables tap detection on
// that axis. The lower 7 bits of a threshold are in units of 0.0625g.
const TapDisabled byte = 0x80

// Orientation is the tilt classification reported by the device.
type Orientation byte

const (
	PortraitUp     Orientation = 0
	PortraitDown   Orientation = 1
	LandscapeRight Orientation = 2
	LandscapeLeft  Orientation = 3
	// Lockout reports that the device is tilted too close to flat to
	// classify as either portrait or landscape.
	Lockout Orientation = 0x40
)

func (o Orientation) String() string {
	switch o {
	case PortraitUp:
		return "portrait-up"
	case PortraitDown:
		return "portrait-down"
	case LandscapeRight:
		return "landscape-right"
	case LandscapeLeft:
		return "landscape-left"
	case Lockout:
		return "lockout"
	}
	return fmt.Sprintf("Orientation(%d)", byte(o))
}

// TapSource is the decoded tap event register. Zero means no tap was latched.
type TapSource byte

// AxisX reports whether the latched tap occurred on the X axis.
func (t TapSource) AxisX() bool { return t&0x10 != 0 }

// AxisY reports whether the latched tap occurred on the Y axis.
func (t TapSource) AxisY() bool { return t&0x20 != 0 }

// AxisZ reports whether the latched tap occurred on the Z axis.
func (t TapSource) AxisZ() bool { return t&0x40 != 0 }

// Double reports whether the event was a double tap.
func (t TapSource) Double() bool { return t&0x08 != 0 }

// Sample is one acceleration measurement. X, Y and Z are the signed 12-bit
// counts read from the device; Gx, Gy and Gz are the same measurement in
// units of standard gravity at the configured full-scale range.
type Sample struct {
	X, Y, Z    int16
	Gx, Gy, Gz float64
}

func (s Sample) String() string {
	return fmt.Sprintf("X:%.3fg Y:%.3fg Z:%.3fg", s.Gx, s.Gy, s.Gz)
}

// Opts holds the configuration applied during initialization.
type Opts struct {
	// Addr is the I²C address, 0x1D or 0x1C depending on the SA0 pin.
	Addr uint16
	// Scale is the full-scale range.
	Scale Scale
	// DataRate is the output data rate.
	DataRate DataRate
	// TapThresholds are the per-axis tap thresholds for X, Y and Z, in
	// units of 0.0625g over the lower 7 bits. TapDisabled turns tap
	// detection off for an axis.
	TapThresholds [3]byte
	// PLDebounce is the portrait/landscape debounce counter. The default
	// of 0x50 is 100ms at the 800Hz data rate.
	PLDebounce byte
}

// DefaultOpts configures ±2g at 800Hz, tap detection on Z only at 0.5g, and
// a 100ms orientation debounce.
var DefaultOpts = Opts{
	Addr:          DefaultAddr,
	Scale:         Scale2G,
	DataRate:      Rate800Hz,
	TapThresholds: [3]byte{TapDisabled, TapDisabled, 0x08},
	PLDebounce:    0x50,
}

// DebugF is the debug print function type.
type DebugF func(format string, args ...interface{})

func noop(string, ...interface{}) {}

// mode is the power state tracked by the driver. Configuration registers may
// only be written in standby; sample output requires active.
type mode byte

const (
	standby mode = iota
	active
)

// Dev is a driver for the MMA8452Q 3-axis accelerometer.
type Dev struct {
	d     *i2c.Dev
	debug DebugF

	mu    sync.Mutex
	scale Scale
	mode  mode
	stop  chan struct{}
	wg    sync.WaitGroup
}

// NewI2C returns a Dev communicating over the provided I²C bus and runs the
// full initialization sequence: the identity register is verified, then the
// device is put in standby, configured for the requested scale, data rate,
// orientation detection and tap detection, and finally set active.
//
// A *WrongDeviceError is returned when something other than a MMA8452Q
// answers at the address; nothing is written to the device in that case.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultAddr
	}
	d := &Dev{
		d:     &i2c.Dev{Bus: b, Addr: addr},
		debug: noop,
		scale: opts.Scale,
		mode:  standby,
	}
	id, err := d.readReg(regWhoAmI)
	if err != nil {
		return nil, fmt.Errorf("mma8452q: reading identity register: %w", err)
	}
	if id != deviceID {
		return nil, &WrongDeviceError{ID: id}
	}
	if err := d.standby(); err != nil {
		return nil, fmt.Errorf("mma8452q: entering standby: %w", err)
	}
	if err := d.setScale(opts.Scale); err != nil {
		return nil, err
	}
	if err := d.setDataRate(opts.DataRate); err != nil {
		return nil, err
	}
	if err := d.setupOrientation(opts.PLDebounce); err != nil {
		return nil, err
	}
	t := opts.TapThresholds
	if err := d.setupTap(t[0], t[1], t[2]); err != nil {
		return nil, err
	}
	if err := d.active(); err != nil {
		return nil, fmt.Errorf("mma8452q: entering active mode: %w", err)
	}
	return d, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("mma8452q: %s", d.d.String())
}

// EnableDebug sets the debugging output using the provided print function.
func (d *Dev) EnableDebug(f DebugF) {
	d.debug = f
}

// Scale returns the currently configured full-scale range.
func (d *Dev) Scale() Scale {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scale
}

// SetScale sets the full-scale range. The device must be in standby.
func (d *Dev) SetScale(s Scale) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != standby {
		return ErrNotStandby
	}
	return d.setScale(s)
}

func (d *Dev) setScale(s Scale) error {
	bits, ok := scaleBits[s]
	if !ok {
		return fmt.Errorf("mma8452q: invalid scale %d", byte(s))
	}
	cfg, err := d.readReg(regXYZDataCfg)
	if err != nil {
		return fmt.Errorf("mma8452q: setting scale: %w", err)
	}
	cfg &^= xyzDataCfgFSMask
	cfg |= bits
	if err := d.writeReg(regXYZDataCfg, cfg); err != nil {
		return fmt.Errorf("mma8452q: setting scale: %w", err)
	}
	d.scale = s
	return nil
}

// SetDataRate sets the output data rate. The device must be in standby.
func (d *Dev) SetDataRate(r DataRate) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != standby {
		return ErrNotStandby
	}
	return d.setDataRate(r)
}

func (d *Dev) setDataRate(r DataRate) error {
	bits, ok := dataRateBits[r]
	if !ok {
		return fmt.Errorf("mma8452q: invalid data rate %d", byte(r))
	}
	ctrl, err := d.readReg(regCtrl1)
	if err != nil {
		return fmt.Errorf("mma8452q: setting data rate: %w", err)
	}
	ctrl &^= ctrl1DRMask
	ctrl |= bits
	if err := d.writeReg(regCtrl1, ctrl); err != nil {
		return fmt.Errorf("mma8452q: setting data rate: %w", err)
	}
	return nil
}

// SetupTap configures tap detection. Each threshold enables detection on its
// axis unless TapDisabled is set; the lower 7 bits are the minimum
// acceleration in units of 0.0625g. The timing profile (time limit, latency,
// second-tap window) is the fixed 800Hz default from application note
// AN4072. The device must be in standby.
func (d *Dev) SetupTap(xThs, yThs, zThs byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != standby {
		return ErrNotStandby
	}
	return d.setupTap(xThs, yThs, zThs)
}

func (d *Dev) setupTap(xThs, yThs, zThs byte) error {
	var enable byte
	if xThs&TapDisabled == 0 {
		enable |= 0x03 // single and double taps on X
		if err := d.writeReg(regPulseThsX, xThs); err != nil {
			return fmt.Errorf("mma8452q: setting X tap threshold: %w", err)
		}
	}
	if yThs&TapDisabled == 0 {
		enable |= 0x0C
		if err := d.writeReg(regPulseThsY, yThs); err != nil {
			return fmt.Errorf("mma8452q: setting Y tap threshold: %w", err)
		}
	}
	if zThs&TapDisabled == 0 {
		enable |= 0x30
		if err := d.writeReg(regPulseThsZ, zThs); err != nil {
			return fmt.Errorf("mma8452q: setting Z tap threshold: %w", err)
		}
	}
	if err := d.writeReg(regPulseCfg, enable|pulseCfgELE); err != nil {
		return fmt.Errorf("mma8452q: writing tap config: %w", err)
	}
	// Fixed timing at the 800Hz data rate: 30ms above threshold, 200ms
	// between taps minimum, 318ms between taps maximum. Time limit,
	// latency and window are consecutive registers.
	if err := d.writeRegs(regPulseTmlt, []byte{0x30, 0xA0, 0xFF}); err != nil {
		return fmt.Errorf("mma8452q: writing tap timing: %w", err)
	}
	return nil
}

// SetupOrientation enables portrait/landscape detection with the provided
// debounce counter. The device must be in standby.
func (d *Dev) SetupOrientation(debounce byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.mode != standby {
		return ErrNotStandby
	}
	return d.setupOrientation(debounce)
}

func (d *Dev) setupOrientation(debounce byte) error {
	cfg, err := d.readReg(regPLCfg)
	if err != nil {
		return fmt.Errorf("mma8452q: enabling orientation detection: %w", err)
	}
	if err := d.writeReg(regPLCfg, cfg|plCfgEnable); err != nil {
		return fmt.Errorf("mma8452q: enabling orientation detection: %w", err)
	}
	if err := d.writeReg(regPLCount, debounce); err != nil {
		return fmt.Errorf("mma8452q: writing orientation debounce: %w", err)
	}
	return nil
}

// DataReady reports whether a new sample is available in the output
// registers.
func (d *Dev) DataReady() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	status, err := d.readReg(regStatus)
	if err != nil {
		return false, fmt.Errorf("mma8452q: reading status: %w", err)
	}
	return status&statusZYXDR != 0, nil
}

// Read returns one acceleration sample. The six output registers are read in
// a single burst; each axis is a left-justified 12-bit two's-complement
// value in a 16-bit MSB-first field.
func (d *Dev) Read() (Sample, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var buf [6]byte
	if err := d.readRegs(regOutXMSB, buf[:]); err != nil {
		return Sample{}, fmt.Errorf("mma8452q: reading sample: %w", err)
	}
	s := Sample{
		X: decode(buf[0], buf[1]),
		Y: decode(buf[2], buf[3]),
		Z: decode(buf[4], buf[5]),
	}
	s.Gx = toG(s.X, d.scale)
	s.Gy = toG(s.Y, d.scale)
	s.Gz = toG(s.Z, d.scale)
	return s, nil
}

// ReadTap returns the latched tap event, or zero when no tap occurred since
// the last read. Reading clears the latch.
func (d *Dev) ReadTap() (TapSource, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	src, err := d.readReg(regPulseSrc)
	if err != nil {
		return 0, fmt.Errorf("mma8452q: reading tap source: %w", err)
	}
	if src&pulseSrcEA == 0 {
		return 0, nil
	}
	return TapSource(src & pulseSrcMask), nil
}

// ReadOrientation returns the current tilt classification. Lockout is
// returned whenever the Z-tilt lockout bit is set, regardless of the
// orientation field.
func (d *Dev) ReadOrientation() (Orientation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	status, err := d.readReg(regPLStatus)
	if err != nil {
		return Lockout, fmt.Errorf("mma8452q: reading orientation status: %w", err)
	}
	if status&plStatusLO != 0 {
		return Lockout, nil
	}
	return Orientation((status & plStatusLAPO) >> 1), nil
}

// Standby puts the device in standby mode. Most configuration registers may
// only be written in standby.
func (d *Dev) Standby() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.standby()
}

func (d *Dev) standby() error {
	ctrl, err := d.readReg(regCtrl1)
	if err != nil {
		return err
	}
	if err := d.writeReg(regCtrl1, ctrl&^ctrl1Active); err != nil {
		return err
	}
	d.mode = standby
	return nil
}

// Active puts the device in active mode, starting sample output.
func (d *Dev) Active() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active()
}

func (d *Dev) active() error {
	ctrl, err := d.readReg(regCtrl1)
	if err != nil {
		return err
	}
	if err := d.writeReg(regCtrl1, ctrl|ctrl1Active); err != nil {
		return err
	}
	d.mode = active
	return nil
}

// ReadContinuous polls the device at the given interval and delivers a
// Sample on the returned channel whenever new data is ready. The channel is
// closed by Halt. Only one continuous read may run at a time.
func (d *Dev) ReadContinuous(interval time.Duration) (<-chan Sample, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if interval <= 0 {
		return nil, fmt.Errorf("mma8452q: invalid poll interval %s", interval)
	}
	if d.stop != nil {
		return nil, fmt.Errorf("mma8452q: continuous read already running")
	}
	d.stop = make(chan struct{})
	ch := make(chan Sample, 16)
	d.wg.Add(1)
	go func(stop <-chan struct{}) {
		defer d.wg.Done()
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ready, err := d.DataReady()
				if err != nil || !ready {
					continue
				}
				s, err := d.Read()
				if err == nil && len(ch) < cap(ch) {
					ch <- s
				}
			}
		}
	}(d.stop)
	return ch, nil
}

// Halt stops any continuous read and puts the device in standby. Implements
// conn.Resource.
func (d *Dev) Halt() error {
	d.mu.Lock()
	if d.stop != nil {
		close(d.stop)
		d.stop = nil
	}
	d.mu.Unlock()
	d.wg.Wait()
	return d.Standby()
}

// decode recovers the sign-extended 12-bit sample from its raw MSB/LSB pair.
// The device transmits the value left-justified in a 16-bit field, so an
// arithmetic shift right by 4 yields a value in [-2048, 2047].
func decode(msb, lsb byte) int16 {
	return int16(uint16(msb)<<8|uint16(lsb)) >> 4
}

// toG converts a raw 12-bit count to units of standard gravity at the given
// full-scale range.
func toG(raw int16, s Scale) float64 {
	return float64(raw) / 2048 * scaleFactor[s]
}

func (d *Dev) readReg(reg byte) (byte, error) {
	var b [1]byte
	if err := d.d.Tx([]byte{reg}, b[:]); err != nil {
		return 0, err
	}
	d.debug("read %#02x: %#02x", reg, b[0])
	return b[0], nil
}

// readRegs reads len(buf) consecutive registers starting at reg. The
// register address auto-increments on the device side; the transport either
// fills buf completely or returns an error.
func (d *Dev) readRegs(reg byte, buf []byte) error {
	if err := d.d.Tx([]byte{reg}, buf); err != nil {
		return err
	}
	d.debug("read %#02x: % x", reg, buf)
	return nil
}

func (d *Dev) writeReg(reg, val byte) error {
	d.debug("write %#02x: %#02x", reg, val)
	return d.d.Tx([]byte{reg, val}, nil)
}

// writeRegs writes the bytes to consecutive registers starting at reg.
func (d *Dev) writeRegs(reg byte, data []byte) error {
	d.debug("write %#02x: % x", reg, data)
	return d.d.Tx(append([]byte{reg}, data...), nil)
}

var _ conn.Resource = &Dev{}
