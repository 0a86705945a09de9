//go:build !periph_noleds

package board

import "miot-f767zi/periph"

// IndicatorLEDs are configured as outputs during bring-up. Their level is
// left as the GPIO driver found it.
var IndicatorLEDs = [...]periph.Pin{LED1Pin, LED2Pin}
