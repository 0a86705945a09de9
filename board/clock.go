package board

import "miot-f767zi/periph"

// Clock tree: 8 MHz HSE through the PLL to a 216 MHz core.
const (
	ClockHSE  = 8_000_000
	ClockCore = 216_000_000
	ClockAHB  = ClockCore     // AHB prescaler /1
	ClockAPB1 = ClockCore / 4 // 54 MHz
	ClockAPB2 = ClockCore / 2 // 108 MHz
)

// BusHz returns the peripheral clock feeding bus b.
func BusHz(b periph.Bus) uint32 {
	switch b {
	case periph.AHB1:
		return ClockAHB
	case periph.APB1:
		return ClockAPB1
	case periph.APB2:
		return ClockAPB2
	default:
		return 0
	}
}
