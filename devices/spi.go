// Package devices binds the board's device parameters to bus instances.
// A device attached here becomes the sole owner of its chip-select line.
package devices

import (
	"periph.io/x/conn/v3/gpio"
	"tinygo.org/x/drivers"

	"miot-f767zi/board"
	"miot-f767zi/errcode"
	"miot-f767zi/periph"
)

// SPIDevice is one module on an SPI bus. It implements drivers.SPI and
// frames every transfer with its own chip-select.
type SPIDevice struct {
	bus    drivers.SPI
	cs     periph.GPIOPin
	params board.SPIDevice
}

var _ drivers.SPI = (*SPIDevice)(nil)

// AttachSPI claims the bus and chip-select named by p. The select line is
// left deselected.
func AttachSPI(b periph.Buses, pins periph.PinFactory, p board.SPIDevice) (*SPIDevice, error) {
	const op = "devices.AttachSPI"
	if !periph.InRange(p.Bus, board.SPINumOf) {
		return nil, errcode.New(errcode.IndexOutOfRange, op, "spi bus")
	}
	if !periph.InRange(p.Clock, periph.SPIClkCount) {
		return nil, errcode.New(errcode.IndexOutOfRange, op, "spi clock")
	}
	bus, ok := b.SPI(p.Bus)
	if !ok {
		return nil, errcode.New(errcode.UnknownBus, op, board.SPIConfig[p.Bus].Dev.Name)
	}
	cs, ok := pins.ByPin(p.CS)
	if !ok {
		return nil, errcode.New(errcode.UnknownPin, op, p.CS.String())
	}
	if err := cs.Configure(periph.ModeOutput); err != nil {
		return nil, &errcode.E{C: errcode.Error, Op: op, Msg: p.CS.String(), Err: err}
	}
	cs.Set(periph.Deselected)
	return &SPIDevice{bus: bus, cs: cs, params: p}, nil
}

// AttachAll attaches every SPI module on the board, by SPI index.
func AttachAll(b periph.Buses, pins periph.PinFactory) ([board.SPINumOf]*SPIDevice, error) {
	var out [board.SPINumOf]*SPIDevice
	for i, p := range board.SPIDevices() {
		d, err := AttachSPI(b, pins, p)
		if err != nil {
			return out, err
		}
		out[i] = d
	}
	return out, nil
}

func (d *SPIDevice) Tx(w, r []byte) error {
	d.cs.Set(gpio.Low)
	defer d.cs.Set(periph.Deselected)
	return d.bus.Tx(w, r)
}

func (d *SPIDevice) Transfer(b byte) (byte, error) {
	d.cs.Set(gpio.Low)
	defer d.cs.Set(periph.Deselected)
	return d.bus.Transfer(b)
}

// Params returns the binding the device was attached with.
func (d *SPIDevice) Params() board.SPIDevice { return d.params }

// Prescaler returns the BR field for the device's clock on its bus.
func (d *SPIDevice) Prescaler() uint8 {
	return board.SPIConfig[d.params.Bus].Div[d.params.Clock]
}
