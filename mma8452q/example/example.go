package example

import (
	"fmt"
	"log"
	"time"

	"github.com/embedsys/devices/mma8452q"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Example reads acceleration every 30ms for 3 seconds, printing any tap or
// orientation change along the way.
func Example() {
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

	d, err := mma8452q.NewI2C(b, &mma8452q.DefaultOpts)
	if err != nil {
		log.Fatal(err)
	}
	defer d.Halt()

	fmt.Println(d.String())

	samples, err := d.ReadContinuous(30 * time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}

	stop := time.After(3 * time.Second)
	last := mma8452q.PortraitUp
	for {
		select {
		case <-stop:
			return
		case s := <-samples:
			fmt.Println(s)
			if tap, err := d.ReadTap(); err == nil && tap != 0 {
				fmt.Println("tap:", tap)
			}
			if o, err := d.ReadOrientation(); err == nil && o != last {
				fmt.Println("orientation:", o)
				last = o
			}
		}
	}
}
