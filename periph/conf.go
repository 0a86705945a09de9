package periph

import "periph.io/x/conn/v3/pin"

// ---- DMA pairing ----

// DMALink pairs a DMA table index with the request channel to select.
type DMALink struct {
	Stream  DMADev
	Channel uint8
}

// OptDMA is a DMA pairing that may be compiled out. The zero value is
// "absent": a record built without DMA support carries no stream at all.
type OptDMA struct {
	link DMALink
	ok   bool
}

// WithDMA returns a present pairing.
func WithDMA(stream DMADev, channel uint8) OptDMA {
	return OptDMA{link: DMALink{Stream: stream, Channel: channel}, ok: true}
}

// NoDMA is the absent pairing.
var NoDMA = OptDMA{}

// Get returns the pairing and whether DMA support is present.
func (o OptDMA) Get() (DMALink, bool) { return o.link, o.ok }

// ---- Per-kind records ----

// DMAConf selects one stream. Streams 0..7 are DMA1, 8..15 are DMA2.
type DMAConf struct {
	Stream uint8
}

// Controller returns 1 or 2 and the stream number within that controller.
func (c DMAConf) Controller() (ctrl, stream uint8) {
	return c.Stream/8 + 1, c.Stream % 8
}

type UARTConf struct {
	Dev  Instance
	Mask Mask
	RX   Pin
	TX   Pin
	RXAF AF
	TXAF AF
	Bus  Bus
	IRQ  IRQn
	DMA  OptDMA
}

func (c *UARTConf) Pins() []PinRole {
	return []PinRole{
		{Func: pin.Func(c.Dev.Name + "_RX"), Pin: c.RX},
		{Func: pin.Func(c.Dev.Name + "_TX"), Pin: c.TX},
	}
}

// SPIClk indexes the standard SPI clock speeds in a divider row.
type SPIClk uint8

const (
	SPIClk100kHz SPIClk = iota
	SPIClk400kHz
	SPIClk1MHz
	SPIClk5MHz
	SPIClk10MHz

	SPIClkCount = 5
)

// Hz returns the nominal frequency of the speed class.
func (c SPIClk) Hz() uint32 {
	switch c {
	case SPIClk100kHz:
		return 100_000
	case SPIClk400kHz:
		return 400_000
	case SPIClk1MHz:
		return 1_000_000
	case SPIClk5MHz:
		return 5_000_000
	case SPIClk10MHz:
		return 10_000_000
	default:
		return 0
	}
}

// SPIDivRow holds the BR prescaler field for each SPIClk on one bus.
type SPIDivRow [SPIClkCount]uint8

type SPIConf struct {
	Dev  Instance
	MOSI Pin
	MISO Pin
	SCLK Pin
	CS   Pin // hardware NSS; Undef when chip-select is software driven
	AF   AF
	Mask Mask
	Bus  Bus
	// Div is the divider row for Bus.
	Div *SPIDivRow
	// SSel is the board chip-select line of the device wired to this bus.
	SSel Pin
}

func (c *SPIConf) Pins() []PinRole {
	r := []PinRole{
		{Func: pin.Func(c.Dev.Name + "_MOSI"), Pin: c.MOSI},
		{Func: pin.Func(c.Dev.Name + "_MISO"), Pin: c.MISO},
		{Func: pin.Func(c.Dev.Name + "_SCK"), Pin: c.SCLK},
	}
	if c.CS != Undef {
		r = append(r, PinRole{Func: pin.Func(c.Dev.Name + "_NSS"), Pin: c.CS})
	}
	if c.SSel != Undef {
		r = append(r, PinRole{Func: pin.Func(c.Dev.Name + "_SSEL"), Pin: c.SSel})
	}
	return r
}

// I2CSpeed is the bus timing class.
type I2CSpeed uint8

const (
	I2CSpeedLow      I2CSpeed = iota // 10 kHz
	I2CSpeedNormal                   // 100 kHz
	I2CSpeedFast                     // 400 kHz
	I2CSpeedFastPlus                 // 1 MHz
)

func (s I2CSpeed) Hz() uint32 {
	switch s {
	case I2CSpeedLow:
		return 10_000
	case I2CSpeedNormal:
		return 100_000
	case I2CSpeedFast:
		return 400_000
	case I2CSpeedFastPlus:
		return 1_000_000
	default:
		return 0
	}
}

type I2CConf struct {
	Dev   Instance
	Speed I2CSpeed
	SCL   Pin
	SDA   Pin
	SCLAF AF
	SDAAF AF
	Bus   Bus
	Mask  Mask
	IRQ   IRQn
}

func (c *I2CConf) Pins() []PinRole {
	return []PinRole{
		{Func: pin.Func(c.Dev.Name + "_SCL"), Pin: c.SCL},
		{Func: pin.Func(c.Dev.Name + "_SDA"), Pin: c.SDA},
	}
}

type TimerConf struct {
	Dev  Instance
	Max  uint32
	Mask Mask
	Bus  Bus
	IRQ  IRQn
}

// ---- Ethernet ----

type ETHMode uint8

const (
	ModeMII ETHMode = iota
	ModeRMII
)

type ETHSpeed uint8

const (
	Speed10T10HD ETHSpeed = iota
	Speed10T10FD
	Speed100TXHD
	Speed100TXFD
)

// RMII signal order of ETHConf.Pins.
const (
	RMIITXD0 = iota
	RMIITXD1
	RMIITXEN
	RMIIRXD0
	RMIIRXD1
	RMIICRSDV
	RMIIMDC
	RMIIMDIO
	RMIIREFCLK

	ETHPinCount
)

var rmiiFuncs = [ETHPinCount]pin.Func{
	"ETH_RMII_TXD0",
	"ETH_RMII_TXD1",
	"ETH_RMII_TX_EN",
	"ETH_RMII_RXD0",
	"ETH_RMII_RXD1",
	"ETH_RMII_CRS_DV",
	"ETH_MDC",
	"ETH_MDIO",
	"ETH_RMII_REF_CLK",
}

type ETHConf struct {
	Dev  Instance
	Mode ETHMode
	// MAC all-zero means derive from the CPU unique ID at driver init.
	MAC     [6]byte
	Speed   ETHSpeed
	DMA     OptDMA
	PHYAddr uint8
	Pins    [ETHPinCount]Pin
	AF      AF
	Bus     Bus
	Mask    Mask
	IRQ     IRQn
}

func (c *ETHConf) PinRoles() []PinRole {
	r := make([]PinRole, 0, ETHPinCount)
	for i, p := range c.Pins {
		r = append(r, PinRole{Func: rmiiFuncs[i], Pin: p})
	}
	return r
}
