// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8452q

import (
	"fmt"
	"log"
	"time"

	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// ExampleNewI2C polls a MMA8452Q for acceleration, tap and orientation
// events. You can use `i2c-tools` to find the I²C bus number, e.g.:
//
//	sudo i2cdetect -y 1
func ExampleNewI2C() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Use i2creg to find the first available I²C bus.
	b, err := i2creg.Open("")
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	d, err := NewI2C(b, &DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	fmt.Println(d.String())

	ticker := time.NewTicker(30 * time.Millisecond)
	defer ticker.Stop()
	stop := time.After(30 * time.Second)

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
			if err != nil {
				log.Fatal(err)
			}
			tap, _ := d.ReadTap()
			o, _ := d.ReadOrientation()
			fmt.Println(s, tap, o)
		}
	}
}
