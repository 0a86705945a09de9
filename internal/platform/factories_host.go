// internal/platform/factories_host.go
//go:build !tinygo

package platform

import (
	"errors"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"tinygo.org/x/drivers"

	"miot-f767zi/board"
	"miot-f767zi/periph"
)

// ----------------------------- CPU (host) ------------------------------------

// HostCPU counts Init calls; Err makes Init fail.
type HostCPU struct {
	mu    sync.Mutex
	Calls int
	Err   error
}

func (c *HostCPU) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls++
	return c.Err
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin implements periph.GPIOPin for host-side tests. A pin nobody has
// configured stays in its reset state: Mode reports false and the level is Low.
type FakePin struct {
	mu         sync.RWMutex
	pin        periph.Pin
	configured bool
	mode       periph.Mode
	level      gpio.Level
	writes     int
	failWith   error
}

func (p *FakePin) Pin() periph.Pin { return p.pin }

func (p *FakePin) Configure(m periph.Mode) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failWith != nil {
		return p.failWith
	}
	p.configured = true
	p.mode = m
	return nil
}

func (p *FakePin) Set(l gpio.Level) {
	p.mu.Lock()
	p.level = l
	p.writes++
	p.mu.Unlock()
}

func (p *FakePin) Get() gpio.Level {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// Mode returns the configured mode and whether Configure was ever called.
func (p *FakePin) Mode() (periph.Mode, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.mode, p.configured
}

// Writes counts Set calls.
func (p *FakePin) Writes() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.writes
}

// ErrPinFault is what a pin marked with Fail returns from Configure.
var ErrPinFault = errors.New("pin_fault")

// HostPinFactory returns stable *FakePin instances per bonded-out pin.
type HostPinFactory struct {
	mu   sync.Mutex
	pins map[periph.Pin]*FakePin
	fail map[periph.Pin]bool
}

func (f *HostPinFactory) ByPin(n periph.Pin) (periph.GPIOPin, bool) {
	if !n.Valid() {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.pins == nil {
		f.pins = make(map[periph.Pin]*FakePin)
	}
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{pin: n}
		if f.fail[n] {
			p.failWith = ErrPinFault
		}
		f.pins[n] = p
	}
	return p, true
}

// Get exposes the underlying *FakePin for tests. ok is false for pins the
// board never asked for.
func (f *HostPinFactory) Get(n periph.Pin) (*FakePin, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	return p, ok
}

// Fail makes Configure on pin n return ErrPinFault.
func (f *HostPinFactory) Fail(n periph.Pin) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail == nil {
		f.fail = make(map[periph.Pin]bool)
	}
	f.fail[n] = true
}

// Outputs returns every pin configured as an output.
func (f *HostPinFactory) Outputs() []*FakePin {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*FakePin
	for _, p := range f.pins {
		if m, ok := p.Mode(); ok && m == periph.ModeOutput {
			out = append(out, p)
		}
	}
	return out
}

// ----------------------------- Buses (host) ----------------------------------

// HostSPI implements drivers.SPI, recording traffic and echoing a fixed
// reply byte.
type HostSPI struct {
	mu    sync.Mutex
	Reply byte
	Sent  []byte
}

var _ drivers.SPI = (*HostSPI)(nil)

func (h *HostSPI) Tx(w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Sent = append(h.Sent, w...)
	for i := range r {
		r[i] = h.Reply
	}
	return nil
}

func (h *HostSPI) Transfer(b byte) (byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Sent = append(h.Sent, b)
	return h.Reply, nil
}

// HostI2C implements drivers.I2C for host-side tests.
type HostI2C struct {
	mu     sync.Mutex
	LastTx struct {
		Addr uint16
		W    []byte
		Rn   int
	}
}

var _ drivers.I2C = (*HostI2C)(nil)

func (h *HostI2C) Tx(addr uint16, w, r []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.LastTx.Addr = addr
	h.LastTx.W = append([]byte(nil), w...)
	h.LastTx.Rn = len(r)
	return nil
}

// HostBuses serves inert buses for every table index.
type HostBuses struct {
	SPIs [board.SPINumOf]*HostSPI
	I2Cs [board.I2CNumOf]*HostI2C
}

func NewHostBuses() *HostBuses {
	b := &HostBuses{}
	for i := range b.SPIs {
		b.SPIs[i] = &HostSPI{}
	}
	for i := range b.I2Cs {
		b.I2Cs[i] = &HostI2C{}
	}
	return b
}

func (b *HostBuses) SPI(d periph.SPIDev) (drivers.SPI, bool) {
	if !periph.InRange(d, board.SPINumOf) {
		return nil, false
	}
	return b.SPIs[d], true
}

func (b *HostBuses) I2C(d periph.I2CDev) (drivers.I2C, bool) {
	if !periph.InRange(d, board.I2CNumOf) {
		return nil, false
	}
	return b.I2Cs[d], true
}

// ----------------------------- Defaults --------------------------------------

// Default returns host collaborators: an inert CPU and fake GPIO.
func Default() (periph.CPU, periph.PinFactory) {
	return &HostCPU{}, &HostPinFactory{}
}

// DefaultBuses returns inert host buses. ok is always true on the host.
func DefaultBuses() (b periph.Buses, ok bool) { return NewHostBuses(), true }
