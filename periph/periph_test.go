package periph

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
)

func TestPinPacking(t *testing.T) {
	cases := []struct {
		port Port
		n    uint8
		want string
	}{
		{PortA, 0, "PA0"},
		{PortB, 7, "PB7"},
		{PortD, 15, "PD15"},
		{PortG, 14, "PG14"},
		{PortH, 1, "PH1"},
	}
	for _, c := range cases {
		p := PinOf(c.port, c.n)
		if p.Port() != c.port || p.Num() != c.n {
			t.Fatalf("%s: unpacked to port %d num %d", c.want, p.Port(), p.Num())
		}
		if p.String() != c.want {
			t.Fatalf("String() = %q, want %q", p.String(), c.want)
		}
	}
	// machine.Pin numbering on stm32: PB0 == 16.
	if PinOf(PortB, 0) != 16 {
		t.Fatalf("PB0 = %d, want 16", PinOf(PortB, 0))
	}
	if Undef.String() != "undef" {
		t.Fatalf("Undef.String() = %q", Undef.String())
	}
}

func TestPinValid(t *testing.T) {
	valid := []Pin{PinOf(PortA, 0), PinOf(PortG, 15), PinOf(PortH, 0), PinOf(PortH, 1)}
	for _, p := range valid {
		if !p.Valid() {
			t.Fatalf("%s should be bonded out", p)
		}
	}
	invalid := []Pin{Undef, PinOf(PortH, 2), PinOf(PortH+1, 0)}
	for _, p := range invalid {
		if p.Valid() {
			t.Fatalf("pin %d should not be valid", uint8(p))
		}
	}
}

func TestModePull(t *testing.T) {
	if ModeInputPulldown.Pull() != gpio.PullDown {
		t.Fatal("pulldown mode must map to gpio.PullDown")
	}
	if ModeInputPullup.Pull() != gpio.PullUp || ModeInput.Pull() != gpio.Float {
		t.Fatal("input pulls mismatch")
	}
	if ModeOutput.Pull() != gpio.PullNoChange {
		t.Fatal("output mode has no pull")
	}
	if Deselected != gpio.High {
		t.Fatal("chip-selects are active-low")
	}
}

func TestDMAStreamVectors(t *testing.T) {
	cases := []struct {
		stream uint8
		isr    ISR
		irq    IRQn
	}{
		{0, "isr_dma1_stream0", 11},
		{4, ISR_DMA1_Stream4, 15},
		{6, ISR_DMA1_Stream6, 17},
		{7, "isr_dma1_stream7", 47},
		{8, ISR_DMA2_Stream0, 56},
		{12, "isr_dma2_stream4", 60},
		{13, "isr_dma2_stream5", 68},
		{14, ISR_DMA2_Stream6, 69},
		{15, "isr_dma2_stream7", 70},
	}
	for _, c := range cases {
		if got := DMAStreamISR(c.stream); got != c.isr {
			t.Fatalf("stream %d: isr %q, want %q", c.stream, got, c.isr)
		}
		if got := DMAStreamIRQ(c.stream); got != c.irq {
			t.Fatalf("stream %d: irq %d, want %d", c.stream, got, c.irq)
		}
		if n, ok := c.isr.IRQ(); !ok || n != c.irq {
			t.Fatalf("vector lookup %q = %d,%v", c.isr, n, ok)
		}
	}
	if _, ok := ISR("isr_bogus").IRQ(); ok {
		t.Fatal("unknown symbol resolved")
	}
}

func TestBusOwns(t *testing.T) {
	if !APB1.Owns(RCC_APB1ENR_USART3EN) || APB1.Owns(RCC_APB2ENR_USART6EN) {
		t.Fatal("APB1 ownership wrong")
	}
	if !APB2.Owns(RCC_APB2ENR_SPI6EN) || APB2.Owns(RCC_APB1ENR_SPI3EN) {
		t.Fatal("APB2 ownership wrong")
	}
	if !AHB1.Owns(RCC_AHB1ENR_ETHMAC) || AHB1.Owns(0) {
		t.Fatal("AHB1 ownership wrong")
	}
	if !RCC_APB1ENR_I2C4EN.Single() || RCC_AHB1ENR_ETHMAC.Single() {
		t.Fatal("Single() wrong")
	}
}

func TestOptDMA(t *testing.T) {
	if _, ok := NoDMA.Get(); ok {
		t.Fatal("NoDMA must be absent")
	}
	var zero OptDMA
	if _, ok := zero.Get(); ok {
		t.Fatal("zero value must be absent")
	}
	l, ok := WithDMA(3, 8).Get()
	if !ok || l.Stream != 3 || l.Channel != 8 {
		t.Fatalf("WithDMA = %+v,%v", l, ok)
	}
}

func TestInRange(t *testing.T) {
	if !InRange(DMADev(3), 4) || InRange(DMADev(4), 4) {
		t.Fatal("unsigned bound wrong")
	}
	if InRange(-1, 4) || !InRange(0, 1) || InRange(0, 0) {
		t.Fatal("signed bound wrong")
	}
}

func TestInstanceString(t *testing.T) {
	if got := USART3.String(); got != "USART3@0x40004800" {
		t.Fatalf("USART3.String() = %q", got)
	}
	if got := AF11.String(); got != "AF11" {
		t.Fatalf("AF11.String() = %q", got)
	}
}
