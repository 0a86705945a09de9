//go:build !tinygo

package platform

import (
	"testing"

	"periph.io/x/conn/v3/gpio"

	"miot-f767zi/board"
	"miot-f767zi/periph"
)

func TestHostPinFactoryStableInstances(t *testing.T) {
	f := &HostPinFactory{}
	a, ok := f.ByPin(periph.PD15)
	if !ok {
		t.Fatal("PD15 rejected")
	}
	b, _ := f.ByPin(periph.PD15)
	if a != b {
		t.Fatal("ByPin returned a new instance for the same pin")
	}
	if _, ok := f.ByPin(periph.Undef); ok {
		t.Fatal("Undef accepted")
	}
	if _, ok := f.Get(periph.PA0); ok {
		t.Fatal("Get reported a pin nobody asked for")
	}
}

func TestFakePinState(t *testing.T) {
	f := &HostPinFactory{}
	g, _ := f.ByPin(periph.PC8)
	fp, _ := f.Get(periph.PC8)
	if _, ok := fp.Mode(); ok || fp.Get() != gpio.Low {
		t.Fatal("fresh pin not in reset state")
	}
	if err := g.Configure(periph.ModeOutput); err != nil {
		t.Fatal(err)
	}
	g.Set(gpio.High)
	if m, ok := fp.Mode(); !ok || m != periph.ModeOutput || fp.Get() != gpio.High || fp.Writes() != 1 {
		t.Fatalf("pin state mode=%v level=%v writes=%d", m, fp.Get(), fp.Writes())
	}
	if n := len(f.Outputs()); n != 1 {
		t.Fatalf("%d outputs, want 1", n)
	}

	f.Fail(periph.PF1)
	bad, _ := f.ByPin(periph.PF1)
	if err := bad.Configure(periph.ModeOutput); err != ErrPinFault {
		t.Fatalf("Configure on failed pin = %v", err)
	}
}

func TestHostBusesCoverTables(t *testing.T) {
	b := NewHostBuses()
	for i := 0; i < board.SPINumOf; i++ {
		if _, ok := b.SPI(periph.SPIDev(i)); !ok {
			t.Fatalf("spi[%d] missing", i)
		}
	}
	if _, ok := b.SPI(periph.SPIDev(board.SPINumOf)); ok {
		t.Fatal("bus past the table end")
	}
	if _, ok := b.I2C(periph.I2CDev(board.I2CNumOf)); ok {
		t.Fatal("bus past the table end")
	}

	b.SPIs[0].Reply = 0xA5
	r := make([]byte, 2)
	if err := b.SPIs[0].Tx([]byte{1, 2}, r); err != nil || r[0] != 0xA5 || len(b.SPIs[0].Sent) != 2 {
		t.Fatalf("spi tx: err=%v r=%x sent=%x", err, r, b.SPIs[0].Sent)
	}
	i2c, _ := b.I2C(0)
	if err := i2c.Tx(0x45, []byte{0x24, 0x00}, make([]byte, 6)); err != nil {
		t.Fatal(err)
	}
	if b.I2Cs[0].LastTx.Addr != 0x45 || b.I2Cs[0].LastTx.Rn != 6 {
		t.Fatalf("i2c last tx %+v", b.I2Cs[0].LastTx)
	}
}

func TestDefaultBusesOnHost(t *testing.T) {
	b, ok := DefaultBuses()
	if !ok || b == nil {
		t.Fatal("host must report a bus provider")
	}
	for i := 0; i < board.SPINumOf; i++ {
		if _, ok := b.SPI(periph.SPIDev(i)); !ok {
			t.Fatalf("spi[%d] missing", i)
		}
	}
	for i := 0; i < board.I2CNumOf; i++ {
		if _, ok := b.I2C(periph.I2CDev(i)); !ok {
			t.Fatalf("i2c[%d] missing", i)
		}
	}
}
