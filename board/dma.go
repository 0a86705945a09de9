//go:build !periph_nodma

package board

import "miot-f767zi/periph"

// DMAEnabled reports whether DMA support is compiled in.
const DMAEnabled = true

// DMAConfig lists the streams drivers may claim, by logical DMA index.
var DMAConfig = [...]periph.DMAConf{
	{Stream: 4},  // DMA1 Stream 4 - USART3_TX
	{Stream: 14}, // DMA2 Stream 6 - USART6_TX
	{Stream: 6},  // DMA1 Stream 6 - USART2_TX
	{Stream: 8},  // DMA2 Stream 0 - ETH_TX
}

// DMAISR names the handler for each DMAConfig entry.
var DMAISR = [...]periph.ISR{
	periph.ISR_DMA1_Stream4,
	periph.ISR_DMA2_Stream6,
	periph.ISR_DMA1_Stream6,
	periph.ISR_DMA2_Stream0,
}

// ETHDMAISR is the handler of the stream Ethernet transmits on.
const ETHDMAISR = periph.ISR_DMA2_Stream0

func withDMA(stream periph.DMADev, channel uint8) periph.OptDMA {
	return periph.WithDMA(stream, channel)
}

// Every stream index a record names must index DMAConfig; a constant
// index past the end of an array does not compile. The check only covers
// the named dma* constants, so records must pass one of them to withDMA,
// never a literal stream index.
var (
	_ = DMAConfig[dmaUSART3TX]
	_ = DMAConfig[dmaUSART6TX]
	_ = DMAConfig[dmaUSART2TX]
	_ = DMAConfig[dmaETHTX]
)
