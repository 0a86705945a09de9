// Package board holds the static wiring of the MIOT nucleo-f767zi board:
// one configuration table per peripheral kind, the constants derived from
// them, device parameters, and the bring-up routine that runs before any
// driver touches hardware.
package board

import "miot-f767zi/periph"

// Descriptor describes what the PCB carries besides the peripheral tables.
type Descriptor struct {
	Name string
	CPU  string

	LED0, LED1, LED2 periph.Pin
	Button           periph.Pin
	ButtonMode       periph.Mode
}

const (
	LED0Pin = periph.PB0  // green, auto-initialised by the CPU port
	LED1Pin = periph.PB7  // blue
	LED2Pin = periph.PB14 // red

	BTN0Pin  = periph.PC13
	BTN0Mode = periph.ModeInputPulldown
)

var Selected = Descriptor{
	Name:       "miot-nucleo-f767zi",
	CPU:        "stm32f767zi",
	LED0:       LED0Pin,
	LED1:       LED1Pin,
	LED2:       LED2Pin,
	Button:     BTN0Pin,
	ButtonMode: BTN0Mode,
}
