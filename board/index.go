package board

import "miot-f767zi/periph"

// Logical device indexes. External code addresses devices by these
// positions, so reordering a table is a breaking change.

const (
	UARTConsole periph.UARTDev = 0 // ST-Link virtual COM port
	UARTSpare   periph.UARTDev = 1 // USART6, not connected
	UARTESP32   periph.UARTDev = 2
)

const (
	SPICC1101   periph.SPIDev = 0
	SPIRFM95W   periph.SPIDev = 1
	SPINRF24    periph.SPIDev = 2 // shared with the SPI connector
	SPIAT86RF2x periph.SPIDev = 3
	SPIESP32    periph.SPIDev = 4
)

const (
	I2CSensors   periph.I2CDev = 0
	I2CConnector periph.I2CDev = 1
)

// DMA slots. UART and ETH records name their stream through these only.
const (
	dmaUSART3TX periph.DMADev = 0
	dmaUSART6TX periph.DMADev = 1
	dmaUSART2TX periph.DMADev = 2
	dmaETHTX    periph.DMADev = 3
)

const ETH0 periph.ETHDev = 0

const TimerSys periph.TimerDev = 0
