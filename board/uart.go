package board

import "miot-f767zi/periph"

// UARTConfig binds each logical UART to its USART. Index 0 is the console.
var UARTConfig = [...]periph.UARTConf{
	UARTConsole: {
		Dev:  periph.USART3,
		Mask: periph.RCC_APB1ENR_USART3EN,
		RX:   periph.PD9,
		TX:   periph.PD8,
		RXAF: periph.AF7,
		TXAF: periph.AF7,
		Bus:  periph.APB1,
		IRQ:  periph.IRQ_USART3,
		DMA:  withDMA(dmaUSART3TX, 7),
	},
	UARTSpare: {
		Dev:  periph.USART6,
		Mask: periph.RCC_APB2ENR_USART6EN,
		RX:   periph.PG9,
		TX:   periph.PG14,
		RXAF: periph.AF8,
		TXAF: periph.AF8,
		Bus:  periph.APB2,
		IRQ:  periph.IRQ_USART6,
		DMA:  withDMA(dmaUSART6TX, 5),
	},
	UARTESP32: {
		Dev:  periph.USART2,
		Mask: periph.RCC_APB1ENR_USART2EN,
		RX:   periph.PD6,
		TX:   periph.PD5,
		RXAF: periph.AF7,
		TXAF: periph.AF7,
		Bus:  periph.APB1,
		IRQ:  periph.IRQ_USART2,
		DMA:  withDMA(dmaUSART2TX, 4),
	},
}

var UARTISR = [...]periph.ISR{
	UARTConsole: periph.ISR_USART3,
	UARTSpare:   periph.ISR_USART6,
	UARTESP32:   periph.ISR_USART2,
}
