// internal/platform/factories_stm32f7.go
//go:build tinygo && stm32f7

package platform

import (
	"machine"

	"periph.io/x/conn/v3/gpio"

	"miot-f767zi/periph"
)

// Default returns the MCU collaborators.
func Default() (periph.CPU, periph.PinFactory) { return mcuCPU{}, mcuPinFactory{} }

// DefaultBuses reports that this target has no bus provider: peripheral
// drivers configure their own controllers from the board tables.
func DefaultBuses() (b periph.Buses, ok bool) { return nil, false }

// The TinyGo runtime has already brought up the clock tree before main.
type mcuCPU struct{}

func (mcuCPU) Init() error { return nil }

// ---- GPIO ----

type mcuPinFactory struct{}

// ByPin maps directly: periph.Pin and machine.Pin share port*16+n numbering.
func (mcuPinFactory) ByPin(p periph.Pin) (periph.GPIOPin, bool) {
	if !p.Valid() {
		return nil, false
	}
	return mcuPin{p: p, m: machine.Pin(p)}, true
}

type mcuPin struct {
	p periph.Pin
	m machine.Pin
}

func (r mcuPin) Pin() periph.Pin { return r.p }

func (r mcuPin) Configure(m periph.Mode) error {
	var mode machine.PinMode
	switch m {
	case periph.ModeOutput:
		mode = machine.PinOutput
	case periph.ModeInputPulldown:
		mode = machine.PinInputPulldown
	case periph.ModeInputPullup:
		mode = machine.PinInputPullup
	default:
		mode = machine.PinInput
	}
	r.m.Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (r mcuPin) Set(l gpio.Level) { r.m.Set(bool(l)) }
func (r mcuPin) Get() gpio.Level  { return gpio.Level(r.m.Get()) }
