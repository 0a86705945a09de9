package periph

import "tinygo.org/x/drivers"

// Buses hands out configured bus instances by logical index, using the
// TinyGo drivers interfaces so the same device code runs on MCU and host.
type Buses interface {
	SPI(d SPIDev) (drivers.SPI, bool)
	I2C(d I2CDev) (drivers.I2C, bool)
}
