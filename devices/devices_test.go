package devices

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"tinygo.org/x/drivers"

	"miot-f767zi/board"
	"miot-f767zi/errcode"
	"miot-f767zi/internal/platform"
	"miot-f767zi/periph"
)

// spySPI records the chip-select level seen during each transfer.
type spySPI struct {
	cs   periph.GPIOPin
	seen []gpio.Level
}

func (p *spySPI) Tx(w, r []byte) error {
	p.seen = append(p.seen, p.cs.Get())
	return nil
}

func (p *spySPI) Transfer(b byte) (byte, error) {
	p.seen = append(p.seen, p.cs.Get())
	return b, nil
}

type stubBuses struct {
	spi drivers.SPI
}

func (b stubBuses) SPI(periph.SPIDev) (drivers.SPI, bool) { return b.spi, b.spi != nil }
func (b stubBuses) I2C(periph.I2CDev) (drivers.I2C, bool) { return nil, false }

func TestAttachSPIFramesTransfersWithChipSelect(t *testing.T) {
	pins := &platform.HostPinFactory{}
	cs, _ := pins.ByPin(board.CC110x.CS)
	spy := &spySPI{cs: cs}

	d, err := AttachSPI(stubBuses{spi: spy}, pins, board.CC110x.SPIDevice)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	if cs.Get() != periph.Deselected {
		t.Fatal("chip-select must be deselected after attach")
	}
	if err := d.Tx([]byte{0x30}, nil); err != nil {
		t.Fatalf("tx: %v", err)
	}
	if _, err := d.Transfer(0x3D); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if len(spy.seen) != 2 || spy.seen[0] != gpio.Low || spy.seen[1] != gpio.Low {
		t.Fatalf("chip-select during transfers = %v, want [Low Low]", spy.seen)
	}
	if cs.Get() != periph.Deselected {
		t.Fatal("chip-select must be released after a transfer")
	}
}

func TestAttachAllUsesBoardSelects(t *testing.T) {
	pins := &platform.HostPinFactory{}
	buses := platform.NewHostBuses()
	all, err := AttachAll(buses, pins)
	if err != nil {
		t.Fatalf("attach all: %v", err)
	}
	for i, d := range all {
		if d == nil {
			t.Fatalf("spi[%d] not attached", i)
		}
		if d.Params().CS != board.SPIConfig[i].SSel {
			t.Fatalf("spi[%d] CS %s, want %s", i, d.Params().CS, board.SPIConfig[i].SSel)
		}
		p, ok := pins.Get(board.SPIConfig[i].SSel)
		if !ok || p.Get() != periph.Deselected {
			t.Fatalf("spi[%d] select not driven high", i)
		}
	}

	if err := all[board.SPIRFM95W].Tx([]byte{0x42, 0x00}, make([]byte, 2)); err != nil {
		t.Fatalf("tx: %v", err)
	}
	if got := buses.SPIs[board.SPIRFM95W].Sent; len(got) != 2 || got[0] != 0x42 {
		t.Fatalf("bus saw %x", got)
	}
}

func TestAttachSPIErrors(t *testing.T) {
	pins := &platform.HostPinFactory{}

	p := board.CC110x.SPIDevice
	p.Bus = periph.SPIDev(board.SPINumOf)
	if _, err := AttachSPI(platform.NewHostBuses(), pins, p); errcode.Of(err) != errcode.IndexOutOfRange {
		t.Fatalf("out-of-range bus: %v", err)
	}

	if _, err := AttachSPI(stubBuses{}, pins, board.CC110x.SPIDevice); errcode.Of(err) != errcode.UnknownBus {
		t.Fatalf("missing bus: %v", err)
	}

	p = board.CC110x.SPIDevice
	p.Clock = periph.SPIClkCount
	if d, err := AttachSPI(platform.NewHostBuses(), pins, p); errcode.Of(err) != errcode.IndexOutOfRange || d != nil {
		t.Fatalf("clock past the divider row: d=%v err=%v", d, err)
	}

	p = board.CC110x.SPIDevice
	p.CS = periph.Undef
	if _, err := AttachSPI(platform.NewHostBuses(), pins, p); errcode.Of(err) != errcode.UnknownPin {
		t.Fatalf("undefined CS: %v", err)
	}
}

func TestAttachAllOverDefaultBuses(t *testing.T) {
	buses, ok := platform.DefaultBuses()
	if !ok {
		t.Fatal("host build must provide buses")
	}
	pins := &platform.HostPinFactory{}
	all, err := AttachAll(buses, pins)
	if err != nil {
		t.Fatalf("attach all: %v", err)
	}
	for i, d := range all {
		if got, want := d.Prescaler(), board.SPIConfig[i].Div[d.Params().Clock]; got != want {
			t.Fatalf("spi[%d] prescaler %d, want %d", i, got, want)
		}
	}
}

func TestPrescalerFollowsBusClock(t *testing.T) {
	pins := &platform.HostPinFactory{}
	buses := platform.NewHostBuses()

	// CC1101 on SPI1 (APB2 @ 108 MHz), 5 MHz => BR 4.
	cc, err := AttachSPI(buses, pins, board.CC110x.SPIDevice)
	if err != nil {
		t.Fatal(err)
	}
	if got := cc.Prescaler(); got != 4 {
		t.Fatalf("CC1101 prescaler = %d, want 4", got)
	}
	// RFM95W on SPI3 (APB1 @ 54 MHz), 1 MHz => BR 5.
	rf, err := AttachSPI(buses, pins, board.SX127x.SPIDevice)
	if err != nil {
		t.Fatal(err)
	}
	if got := rf.Prescaler(); got != 5 {
		t.Fatalf("RFM95W prescaler = %d, want 5", got)
	}
}

func TestNewSHT3x(t *testing.T) {
	buses := platform.NewHostBuses()
	d, err := NewSHT3x(buses, board.SHT3x)
	if err != nil {
		t.Fatalf("NewSHT3x: %v", err)
	}
	if d.Address != board.SHT3xAddr2 {
		t.Fatalf("address = %#x, want %#x", d.Address, board.SHT3xAddr2)
	}

	bad := board.SHT3x
	bad.Bus = periph.I2CDev(board.I2CNumOf)
	if _, err := NewSHT3x(buses, bad); errcode.Of(err) != errcode.IndexOutOfRange {
		t.Fatalf("out-of-range bus: %v", err)
	}
	if _, err := NewSHT3x(stubBuses{}, board.SHT3x); errcode.Of(err) != errcode.UnknownBus {
		t.Fatalf("missing bus: %v", err)
	}
}
