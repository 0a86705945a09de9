package devices

import (
	"tinygo.org/x/drivers/sht3x"

	"miot-f767zi/board"
	"miot-f767zi/errcode"
	"miot-f767zi/periph"
)

// NewSHT3x builds the driver for the sensor described by p.
func NewSHT3x(b periph.Buses, p board.SHT3xParams) (*sht3x.Device, error) {
	const op = "devices.NewSHT3x"
	if !periph.InRange(p.Bus, board.I2CNumOf) {
		return nil, errcode.New(errcode.IndexOutOfRange, op, "i2c bus")
	}
	bus, ok := b.I2C(p.Bus)
	if !ok {
		return nil, errcode.New(errcode.UnknownBus, op, board.I2CConfig[p.Bus].Dev.Name)
	}
	d := sht3x.New(bus)
	d.Address = p.Addr
	return &d, nil
}
