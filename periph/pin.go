package periph

import "miot-f767zi/x/conv"

// Port is a GPIO port letter on the STM32F7 (PORT_A = 0).
type Port uint8

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
)

// Pin packs (port, number) as port*16+number. This matches TinyGo's
// machine.Pin numbering on stm32, so a Pin converts directly.
type Pin uint8

// Undef marks an unused pin slot (GPIO_UNDEF).
const Undef Pin = 0xFF

const pinsPerPort = 16

// PinOf returns the pin n on port p.
func PinOf(p Port, n uint8) Pin { return Pin(uint8(p)*pinsPerPort + n) }

func (p Pin) Port() Port { return Port(uint8(p) / pinsPerPort) }
func (p Pin) Num() uint8 { return uint8(p) % pinsPerPort }

// Valid reports whether p is bonded out on the LQFP144 package:
// ports A..G are complete, port H only carries PH0/PH1 (the HSE pins).
func (p Pin) Valid() bool {
	if p == Undef {
		return false
	}
	switch port := p.Port(); {
	case port <= PortG:
		return true
	case port == PortH:
		return p.Num() < 2
	default:
		return false
	}
}

func (p Pin) String() string {
	if p == Undef {
		return "undef"
	}
	var buf [8]byte
	num := conv.Utoa(buf[:], uint64(p.Num()))
	return "P" + string(rune('A'+p.Port())) + string(num)
}

// Mode is the electrical configuration requested from the GPIO driver.
type Mode uint8

const (
	ModeOutput Mode = iota
	ModeInput
	ModeInputPulldown
	ModeInputPullup
)

func (m Mode) String() string {
	switch m {
	case ModeOutput:
		return "out"
	case ModeInput:
		return "in"
	case ModeInputPulldown:
		return "in_pd"
	case ModeInputPullup:
		return "in_pu"
	default:
		return "unknown"
	}
}
