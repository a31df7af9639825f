// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8452q

// Register map of the MMA8452Q. Addresses and bit layouts are fixed by the
// hardware; see the datasheet, table 11.
const (
	regStatus     byte = 0x00 // Real-time data ready status
	regOutXMSB    byte = 0x01 // 12-bit X sample, MSB first
	regOutXLSB    byte = 0x02
	regOutYMSB    byte = 0x03
	regOutYLSB    byte = 0x04
	regOutZMSB    byte = 0x05
	regOutZLSB    byte = 0x06
	regSysMod     byte = 0x0B // Current system mode
	regIntSource  byte = 0x0C // Interrupt status
	regWhoAmI     byte = 0x0D // Device identity, always reads 0x2A
	regXYZDataCfg byte = 0x0E // Full-scale range selection
	regPLStatus   byte = 0x10 // Portrait/landscape status
	regPLCfg      byte = 0x11 // Portrait/landscape configuration
	regPLCount    byte = 0x12 // Portrait/landscape debounce counter
	regPLBfZComp  byte = 0x13 // Back/front and Z compensation
	regPLThs      byte = 0x14 // Portrait/landscape threshold
	regFFMTCfg    byte = 0x15 // Freefall/motion configuration
	regFFMTSrc    byte = 0x16 // Freefall/motion source
	regFFMTThs    byte = 0x17 // Freefall/motion threshold
	regFFMTCount  byte = 0x18 // Freefall/motion debounce counter
	regPulseCfg   byte = 0x21 // Tap (pulse) configuration
	regPulseSrc   byte = 0x22 // Tap (pulse) source
	regPulseThsX  byte = 0x23 // X tap threshold
	regPulseThsY  byte = 0x24 // Y tap threshold
	regPulseThsZ  byte = 0x25 // Z tap threshold
	regPulseTmlt  byte = 0x26 // Tap time limit
	regPulseLtcy  byte = 0x27 // Tap latency
	regPulseWind  byte = 0x28 // Second tap window
	regASlpCount  byte = 0x29 // Auto-sleep inactivity counter
	regCtrl1      byte = 0x2A // System control 1: data rate, active mode
	regCtrl2      byte = 0x2B // System control 2: sleep, reset, self-test
	regCtrl3      byte = 0x2C // Interrupt control
	regCtrl4      byte = 0x2D // Interrupt enable
	regCtrl5      byte = 0x2E // Interrupt pin routing
	regOffX       byte = 0x2F // X offset correction
	regOffY       byte = 0x30 // Y offset correction
	regOffZ       byte = 0x31 // Z offset correction
)

const (
	// deviceID is the value regWhoAmI always reads back on a MMA8452Q.
	deviceID byte = 0x2A

	// regStatus bits.
	statusZYXDR byte = 0x08 // New X/Y/Z sample available

	// regCtrl1 bits.
	ctrl1Active byte = 0x01 // Active (set) vs standby (clear)
	ctrl1DRMask byte = 0x38 // Output data rate field, bits 5:3

	// regXYZDataCfg bits.
	xyzDataCfgFSMask byte = 0x03 // Full-scale range field, bits 1:0

	// regPLCfg / regPLStatus bits.
	plCfgEnable   byte = 0x40 // Portrait/landscape detection enable
	plStatusLO    byte = 0x40 // Z-tilt lockout
	plStatusLAPO  byte = 0x06 // Orientation field, bits 2:1
	plStatusNewLO byte = 0x80 // Orientation changed since last read

	// regPulseCfg / regPulseSrc bits.
	pulseCfgELE  byte = 0x40 // Latch tap events into regPulseSrc
	pulseSrcEA   byte = 0x80 // A tap event is latched
	pulseSrcMask byte = 0x7F
)
