package board

import "miot-f767zi/periph"

// SPIConfig binds each logical SPI bus to its controller. Every bus carries
// exactly one radio or module; its select line is driven in software
// (SSel), so the hardware NSS pin is left unassigned.
var SPIConfig = [...]periph.SPIConf{
	SPICC1101: {
		Dev:  periph.SPI1,
		MOSI: periph.PA7, // also ETH_RMII_CRS_DV, see SharedPins
		MISO: periph.PA6,
		SCLK: periph.PA5,
		CS:   periph.Undef,
		AF:   periph.AF5,
		Mask: periph.RCC_APB2ENR_SPI1EN,
		Bus:  periph.APB2,
		Div:  &SPIDivTable[divAPB2],
		SSel: periph.PD15,
	},
	SPIRFM95W: {
		Dev:  periph.SPI3,
		MOSI: periph.PC12,
		MISO: periph.PC11,
		SCLK: periph.PC10,
		CS:   periph.Undef,
		AF:   periph.AF6,
		Mask: periph.RCC_APB1ENR_SPI3EN,
		Bus:  periph.APB1,
		Div:  &SPIDivTable[divAPB1],
		SSel: periph.PC8,
	},
	SPINRF24: {
		Dev:  periph.SPI4,
		MOSI: periph.PE6,
		MISO: periph.PE5,
		SCLK: periph.PE2,
		CS:   periph.Undef,
		AF:   periph.AF5,
		Mask: periph.RCC_APB2ENR_SPI4EN,
		Bus:  periph.APB2,
		Div:  &SPIDivTable[divAPB2],
		SSel: periph.PA15,
	},
	SPIAT86RF2x: {
		Dev:  periph.SPI5,
		MOSI: periph.PF9,
		MISO: periph.PF8,
		SCLK: periph.PF7,
		CS:   periph.Undef,
		AF:   periph.AF5,
		Mask: periph.RCC_APB2ENR_SPI5EN,
		Bus:  periph.APB2,
		Div:  &SPIDivTable[divAPB2],
		SSel: periph.PF1,
	},
	SPIESP32: {
		Dev:  periph.SPI6,
		MOSI: periph.PB5,
		MISO: periph.PB4,
		SCLK: periph.PB3,
		CS:   periph.Undef,
		AF:   periph.AF8,
		Mask: periph.RCC_APB2ENR_SPI6EN,
		Bus:  periph.APB2,
		Div:  &SPIDivTable[divAPB2],
		SSel: periph.PF12,
	},
}
