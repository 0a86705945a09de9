package board

import "miot-f767zi/periph"

// Ethernet DMA descriptor rings.
const (
	ETHRXBufferCount = 4
	ETHTXBufferCount = 4
	ETHRXBufferSize  = 1524
	ETHTXBufferSize  = 1524
)

// ETHConfig has a single entry: the on-chip MAC wired to the LAN8742A PHY.
var ETHConfig = [...]periph.ETHConf{
	ETH0: {
		Dev:     periph.ETH,
		Mode:    periph.ModeRMII,
		Speed:   periph.Speed100TXFD,
		DMA:     withDMA(dmaETHTX, 8),
		PHYAddr: 0x01,
		Pins: [periph.ETHPinCount]periph.Pin{
			periph.RMIITXD0:   periph.PG13,
			periph.RMIITXD1:   periph.PB13,
			periph.RMIITXEN:   periph.PG11,
			periph.RMIIRXD0:   periph.PC4,
			periph.RMIIRXD1:   periph.PC5,
			periph.RMIICRSDV:  periph.PA7,
			periph.RMIIMDC:    periph.PC1,
			periph.RMIIMDIO:   periph.PA2,
			periph.RMIIREFCLK: periph.PA1,
		},
		AF:   periph.AF11,
		Bus:  periph.AHB1,
		Mask: periph.RCC_AHB1ENR_ETHMAC,
		IRQ:  periph.IRQ_ETH,
	},
}
