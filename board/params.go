package board

import "miot-f767zi/periph"

// Device parameters for the modules soldered to this board. Select lines
// are read from SPIConfig so the drivers and bring-up share one source.

// SPIDevice is the part of every SPI module's parameters the bus layer needs.
type SPIDevice struct {
	Bus   periph.SPIDev
	Clock periph.SPIClk
	CS    periph.Pin
}

type CC110xParams struct {
	SPIDevice
	GDO0, GDO2 periph.Pin
	L2Addr     uint8 // 0: derive from the CPU ID
}

type SX127xPA uint8

const (
	SX127xPARFO SX127xPA = iota
	SX127xPABoost
)

type SX127xParams struct {
	SPIDevice
	Reset    periph.Pin
	DIO      [6]periph.Pin
	PASelect SX127xPA
}

type NRF24L01PParams struct {
	SPIDevice
	CE, IRQ periph.Pin
}

type AT86RF2xxParams struct {
	SPIDevice
	Int, Sleep, Reset periph.Pin
}

type ESP32SPIParams struct {
	SPIDevice
}

type SLIPParams struct {
	UART periph.UARTDev
	Baud uint32
}

type SHT3xMode uint8

const (
	SHT3xSingleShot SHT3xMode = iota
	SHT3xPeriodic05MPS
	SHT3xPeriodic1MPS
	SHT3xPeriodic2MPS
	SHT3xPeriodic4MPS
	SHT3xPeriodic10MPS
)

type SHT3xRepeat uint8

const (
	SHT3xLow SHT3xRepeat = iota
	SHT3xMedium
	SHT3xHigh
)

// SHT3x I2C addresses: ADDR pin low (1) or high (2).
const (
	SHT3xAddr1 uint16 = 0x44
	SHT3xAddr2 uint16 = 0x45
)

type SHT3xParams struct {
	Bus    periph.I2CDev
	Addr   uint16
	Mode   SHT3xMode
	Repeat SHT3xRepeat
}

var CC110x = CC110xParams{
	SPIDevice: SPIDevice{Bus: SPICC1101, Clock: periph.SPIClk5MHz, CS: SPIConfig[SPICC1101].SSel},
	GDO0:      periph.PA4,
	GDO2:      periph.PD14,
}

var SX127x = SX127xParams{
	SPIDevice: SPIDevice{Bus: SPIRFM95W, Clock: periph.SPIClk1MHz, CS: SPIConfig[SPIRFM95W].SSel},
	Reset:     periph.PD2,
	DIO:       [6]periph.Pin{periph.PF5, periph.PF10, periph.PF2, periph.PF3, periph.PD3, periph.PC9},
	PASelect:  SX127xPABoost,
}

// NRF24L01P has no usable driver yet; the wiring is kept so bring-up and
// the pin map account for it.
var NRF24L01P = NRF24L01PParams{
	SPIDevice: SPIDevice{Bus: SPINRF24, Clock: periph.SPIClk1MHz, CS: SPIConfig[SPINRF24].SSel},
	CE:        periph.PB12,
	IRQ:       periph.PC7,
}

var AT86RF2xx = AT86RF2xxParams{
	SPIDevice: SPIDevice{Bus: SPIAT86RF2x, Clock: periph.SPIClk5MHz, CS: SPIConfig[SPIAT86RF2x].SSel},
	Int:       periph.PG1,
	Sleep:     periph.PE3,
	Reset:     periph.PF0,
}

var ESP32SPI = ESP32SPIParams{
	SPIDevice: SPIDevice{Bus: SPIESP32, Clock: periph.SPIClk1MHz, CS: SPIConfig[SPIESP32].SSel},
}

var SLIP = SLIPParams{UART: UARTESP32, Baud: 115200}

var SHT3x = SHT3xParams{
	Bus:    I2CSensors,
	Addr:   SHT3xAddr2,
	Mode:   SHT3xPeriodic2MPS,
	Repeat: SHT3xHigh,
}

// SPIDevices lists every SPI module's bus binding, by SPI index.
func SPIDevices() [SPINumOf]SPIDevice {
	return [SPINumOf]SPIDevice{
		SPICC1101:   CC110x.SPIDevice,
		SPIRFM95W:   SX127x.SPIDevice,
		SPINRF24:    NRF24L01P.SPIDevice,
		SPIAT86RF2x: AT86RF2xx.SPIDevice,
		SPIESP32:    ESP32SPI.SPIDevice,
	}
}
