//go:build periph_noleds

package board

import "miot-f767zi/periph"

var IndicatorLEDs = [...]periph.Pin{}
