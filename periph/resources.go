package periph

import (
	"golang.org/x/exp/constraints"
	"periph.io/x/conn/v3/pin"

	"miot-f767zi/x/conv"
)

// AF is an alternate-function multiplexer selector (GPIO_AF0..GPIO_AF15).
type AF uint8

const (
	AF0 AF = iota
	AF1
	AF2
	AF3
	AF4
	AF5
	AF6
	AF7
	AF8
	AF9
	AF10
	AF11
	AF12
	AF13
	AF14
	AF15
)

func (a AF) String() string {
	var buf [4]byte
	return "AF" + string(conv.Utoa(buf[:], uint64(a)))
}

// Bus is the clock/peripheral-enable domain an instance lives on.
type Bus uint8

const (
	AHB1 Bus = iota
	APB1
	APB2
)

func (b Bus) String() string {
	switch b {
	case AHB1:
		return "AHB1"
	case APB1:
		return "APB1"
	case APB2:
		return "APB2"
	default:
		return "bus?"
	}
}

// Mask is a clock-enable bit mask in the bus's RCC enable register.
type Mask uint32

// Single reports whether exactly one enable bit is set.
func (m Mask) Single() bool { return m != 0 && m&(m-1) == 0 }

// Instance references one on-chip peripheral block.
type Instance struct {
	Name string
	Base uintptr
}

func (i Instance) String() string {
	var buf [8]byte
	return i.Name + "@0x" + string(conv.Hex(buf[:], uint64(i.Base), 8))
}

// IRQn is an NVIC interrupt number.
type IRQn int16

// ISR is the interrupt-service-routine symbol installed for a vector.
type ISR string

// NoISR is the empty binding (feature compiled out).
const NoISR ISR = ""

// IRQ resolves the vector the symbol is installed at.
func (s ISR) IRQ() (IRQn, bool) {
	n, ok := vectors[s]
	return n, ok
}

// ISR finds the symbol installed at a vector.
func (n IRQn) ISR() (ISR, bool) {
	for s, v := range vectors {
		if v == n {
			return s, true
		}
	}
	return NoISR, false
}

// PinRole tags one pin of a record with the signal it carries.
type PinRole struct {
	Func pin.Func
	Pin  Pin
}

// ---- Logical device indexes ----
// A distinct type per table keeps a DMA index from being passed where an SPI
// index is expected.

type (
	UARTDev  uint8
	SPIDev   uint8
	I2CDev   uint8
	DMADev   uint8
	ETHDev   uint8
	TimerDev uint8
)

// InRange reports 0 <= i < n.
func InRange[T constraints.Integer](i T, n int) bool {
	return i >= 0 && uint64(i) < uint64(n)
}
