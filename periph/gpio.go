package periph

import "periph.io/x/conn/v3/gpio"

// ---- Collaborators consumed by the board bring-up ----

// CPU performs core and clock initialisation. It is assumed infallible;
// a non-nil error means the board cannot continue.
type CPU interface {
	Init() error
}

// GPIOPin is one configured line. Configure never changes the output
// level: callers that need a defined level call Set explicitly.
type GPIOPin interface {
	Pin() Pin
	Configure(m Mode) error
	Set(l gpio.Level)
	Get() gpio.Level
}

// PinFactory supplies GPIO handles by pin identifier.
type PinFactory interface {
	ByPin(p Pin) (GPIOPin, bool)
}

// Deselected is the inactive level of every SPI chip-select on this board
// (active-low selects).
const Deselected = gpio.High

// Pull maps an input mode to its pull resistor setting.
func (m Mode) Pull() gpio.Pull {
	switch m {
	case ModeInputPulldown:
		return gpio.PullDown
	case ModeInputPullup:
		return gpio.PullUp
	case ModeInput:
		return gpio.Float
	default:
		return gpio.PullNoChange
	}
}
