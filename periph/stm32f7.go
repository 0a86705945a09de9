package periph

// STM32F76xxx identifier domain (RM0410). Only the blocks this board wires
// are listed; anything a table references must be defined here.

// ---- Peripheral instances ----

var (
	TIM2   = Instance{Name: "TIM2", Base: 0x40000000}
	SPI3   = Instance{Name: "SPI3", Base: 0x40003C00}
	USART2 = Instance{Name: "USART2", Base: 0x40004400}
	USART3 = Instance{Name: "USART3", Base: 0x40004800}
	I2C2   = Instance{Name: "I2C2", Base: 0x40005800}
	I2C4   = Instance{Name: "I2C4", Base: 0x40006000}
	USART6 = Instance{Name: "USART6", Base: 0x40011400}
	SPI1   = Instance{Name: "SPI1", Base: 0x40013000}
	SPI4   = Instance{Name: "SPI4", Base: 0x40013400}
	SPI5   = Instance{Name: "SPI5", Base: 0x40015000}
	SPI6   = Instance{Name: "SPI6", Base: 0x40015400}
	ETH    = Instance{Name: "ETH", Base: 0x40028000}
)

// ---- RCC clock-enable bits ----

const (
	RCC_AHB1ENR_DMA1EN      Mask = 1 << 21
	RCC_AHB1ENR_DMA2EN      Mask = 1 << 22
	RCC_AHB1ENR_ETHMACEN    Mask = 1 << 25
	RCC_AHB1ENR_ETHMACTXEN  Mask = 1 << 26
	RCC_AHB1ENR_ETHMACRXEN  Mask = 1 << 27
	RCC_AHB1ENR_ETHMACPTPEN Mask = 1 << 28

	RCC_APB1ENR_TIM2EN   Mask = 1 << 0
	RCC_APB1ENR_SPI2EN   Mask = 1 << 14
	RCC_APB1ENR_SPI3EN   Mask = 1 << 15
	RCC_APB1ENR_USART2EN Mask = 1 << 17
	RCC_APB1ENR_USART3EN Mask = 1 << 18
	RCC_APB1ENR_UART4EN  Mask = 1 << 19
	RCC_APB1ENR_UART5EN  Mask = 1 << 20
	RCC_APB1ENR_I2C1EN   Mask = 1 << 21
	RCC_APB1ENR_I2C2EN   Mask = 1 << 22
	RCC_APB1ENR_I2C3EN   Mask = 1 << 23
	RCC_APB1ENR_I2C4EN   Mask = 1 << 24

	RCC_APB2ENR_USART1EN Mask = 1 << 4
	RCC_APB2ENR_USART6EN Mask = 1 << 5
	RCC_APB2ENR_SPI1EN   Mask = 1 << 12
	RCC_APB2ENR_SPI4EN   Mask = 1 << 13
	RCC_APB2ENR_SPI5EN   Mask = 1 << 20
	RCC_APB2ENR_SPI6EN   Mask = 1 << 21
)

// ETH needs MAC, TX and RX clocks together.
const RCC_AHB1ENR_ETHMAC = RCC_AHB1ENR_ETHMACEN | RCC_AHB1ENR_ETHMACTXEN | RCC_AHB1ENR_ETHMACRXEN

var busEnables = map[Bus]Mask{
	AHB1: RCC_AHB1ENR_DMA1EN | RCC_AHB1ENR_DMA2EN | RCC_AHB1ENR_ETHMAC | RCC_AHB1ENR_ETHMACPTPEN,
	APB1: RCC_APB1ENR_TIM2EN | RCC_APB1ENR_SPI2EN | RCC_APB1ENR_SPI3EN |
		RCC_APB1ENR_USART2EN | RCC_APB1ENR_USART3EN | RCC_APB1ENR_UART4EN | RCC_APB1ENR_UART5EN |
		RCC_APB1ENR_I2C1EN | RCC_APB1ENR_I2C2EN | RCC_APB1ENR_I2C3EN | RCC_APB1ENR_I2C4EN,
	APB2: RCC_APB2ENR_USART1EN | RCC_APB2ENR_USART6EN |
		RCC_APB2ENR_SPI1EN | RCC_APB2ENR_SPI4EN | RCC_APB2ENR_SPI5EN | RCC_APB2ENR_SPI6EN,
}

// Owns reports whether every bit of m is an enable bit of this bus.
func (b Bus) Owns(m Mask) bool {
	all, ok := busEnables[b]
	return ok && m != 0 && m&^all == 0
}

// ---- Interrupt vectors ----

const (
	IRQ_DMA1_Stream0 IRQn = 11
	IRQ_DMA1_Stream6 IRQn = 17
	IRQ_TIM2         IRQn = 28
	IRQ_I2C2_EV      IRQn = 33
	IRQ_I2C2_ER      IRQn = 34
	IRQ_SPI1         IRQn = 35
	IRQ_USART2       IRQn = 38
	IRQ_USART3       IRQn = 39
	IRQ_DMA1_Stream7 IRQn = 47
	IRQ_SPI3         IRQn = 51
	IRQ_DMA2_Stream0 IRQn = 56
	IRQ_DMA2_Stream4 IRQn = 60
	IRQ_ETH          IRQn = 61
	IRQ_DMA2_Stream5 IRQn = 68
	IRQ_DMA2_Stream7 IRQn = 70
	IRQ_USART6       IRQn = 71
	IRQ_SPI4         IRQn = 84
	IRQ_SPI5         IRQn = 85
	IRQ_SPI6         IRQn = 86
	IRQ_I2C4_EV      IRQn = 95
	IRQ_I2C4_ER      IRQn = 96
)

const (
	ISR_TIM2    ISR = "isr_tim2"
	ISR_I2C2_EV ISR = "isr_i2c2_ev"
	ISR_I2C2_ER ISR = "isr_i2c2_er"
	ISR_I2C4_EV ISR = "isr_i2c4_ev"
	ISR_I2C4_ER ISR = "isr_i2c4_er"
	ISR_USART2  ISR = "isr_usart2"
	ISR_USART3  ISR = "isr_usart3"
	ISR_USART6  ISR = "isr_usart6"
	ISR_SPI1    ISR = "isr_spi1"
	ISR_SPI3    ISR = "isr_spi3"
	ISR_SPI4    ISR = "isr_spi4"
	ISR_SPI5    ISR = "isr_spi5"
	ISR_SPI6    ISR = "isr_spi6"
	ISR_ETH     ISR = "isr_eth"

	ISR_DMA1_Stream4 ISR = "isr_dma1_stream4"
	ISR_DMA1_Stream6 ISR = "isr_dma1_stream6"
	ISR_DMA2_Stream0 ISR = "isr_dma2_stream0"
	ISR_DMA2_Stream6 ISR = "isr_dma2_stream6"
)

var vectors = map[ISR]IRQn{
	ISR_TIM2:    IRQ_TIM2,
	ISR_I2C2_EV: IRQ_I2C2_EV,
	ISR_I2C2_ER: IRQ_I2C2_ER,
	ISR_I2C4_EV: IRQ_I2C4_EV,
	ISR_I2C4_ER: IRQ_I2C4_ER,
	ISR_USART2:  IRQ_USART2,
	ISR_USART3:  IRQ_USART3,
	ISR_USART6:  IRQ_USART6,
	ISR_SPI1:    IRQ_SPI1,
	ISR_SPI3:    IRQ_SPI3,
	ISR_SPI4:    IRQ_SPI4,
	ISR_SPI5:    IRQ_SPI5,
	ISR_SPI6:    IRQ_SPI6,
	ISR_ETH:     IRQ_ETH,
}

func init() {
	for s := uint8(0); s < 16; s++ {
		vectors[DMAStreamISR(s)] = DMAStreamIRQ(s)
	}
}

// DMAStreamIRQ maps a flat stream index (DMA1 0..7, DMA2 8..15) to its
// vector. The vector numbers are not contiguous across the table.
func DMAStreamIRQ(stream uint8) IRQn {
	n := IRQn(stream % 8)
	switch {
	case stream < 7:
		return IRQ_DMA1_Stream0 + n
	case stream == 7:
		return IRQ_DMA1_Stream7
	case stream < 13:
		return IRQ_DMA2_Stream0 + n
	default:
		return IRQ_DMA2_Stream5 + n - 5
	}
}

// DMAStreamISR returns the handler symbol for a flat stream index.
func DMAStreamISR(stream uint8) ISR {
	c := DMAConf{Stream: stream}
	ctrl, n := c.Controller()
	return ISR("isr_dma" + string(rune('0'+ctrl)) + "_stream" + string(rune('0'+n)))
}
