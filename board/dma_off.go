//go:build periph_nodma

package board

import "miot-f767zi/periph"

const DMAEnabled = false

var DMAConfig = [...]periph.DMAConf{}

var DMAISR = [...]periph.ISR{}

const ETHDMAISR = periph.NoISR

// Without DMA support records carry no stream at all.
func withDMA(periph.DMADev, uint8) periph.OptDMA { return periph.NoDMA }
