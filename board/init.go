package board

import (
	"miot-f767zi/errcode"
	"miot-f767zi/periph"
)

// Init brings the board to a safe baseline. It runs once, synchronously,
// before any driver initialisation and before interrupts are enabled.
// There is no failure path: a collaborator error halts the board.
func Init(cpu periph.CPU, pins periph.PinFactory) {
	if err := cpu.Init(); err != nil {
		halt(&errcode.E{C: errcode.CPUInit, Op: "board.Init", Err: err})
	}
	for _, p := range IndicatorLEDs {
		configure(pins, p, periph.ModeOutput)
	}
	DeselectAll(pins)
}

// DeselectAll drives the select line of every SPI bus, in table order, to
// the inactive level. Repeating it leaves the same state.
func DeselectAll(pins periph.PinFactory) {
	for i := range SPIConfig {
		g := configure(pins, SPIConfig[i].SSel, periph.ModeOutput)
		g.Set(periph.Deselected)
	}
}

// ChipSelects returns the select line of each SPI bus by logical index.
func ChipSelects() [SPINumOf]periph.Pin {
	var cs [SPINumOf]periph.Pin
	for i := range SPIConfig {
		cs[i] = SPIConfig[i].SSel
	}
	return cs
}

func configure(pins periph.PinFactory, p periph.Pin, m periph.Mode) periph.GPIOPin {
	g, ok := pins.ByPin(p)
	if !ok {
		halt(errcode.New(errcode.UnknownPin, "board.Init", p.String()))
	}
	if err := g.Configure(m); err != nil {
		halt(&errcode.E{C: errcode.Error, Op: "board.Init", Msg: p.String(), Err: err})
	}
	return g
}

// halt stops the boot. No console exists yet, so the panic is the trap.
func halt(err error) {
	panic(err)
}
