package board

import (
	"errors"

	"miot-f767zi/errcode"
	"miot-f767zi/periph"
	"miot-f767zi/x/conv"
)

// SharedPins lists pins deliberately wired to more than one peripheral.
// The users are mutually exclusive: only one driver may claim the pin.
var SharedPins = map[periph.Pin][]string{
	periph.PA7: {"SPI1_MOSI", "ETH_RMII_CRS_DV"}, // CC1101 and Ethernet
}

// Validate re-checks the tables for defects the compiler cannot see:
// pins outside the package, duplicated pins within a record, cross-table
// indexes past the end of their table, ISR bindings that disagree with the
// record's vector, clock masks on the wrong bus, and a stale SPI divider
// table. It returns all defects joined, or nil.
func Validate() error {
	var v validator
	v.uarts()
	v.spis()
	v.i2cs()
	v.dmas()
	v.eths()
	v.timers()
	return errors.Join(v.errs...)
}

type validator struct {
	errs []error
}

func (v *validator) fail(c errcode.Code, op, msg string) {
	v.errs = append(v.errs, errcode.New(c, op, msg))
}

func op(kind string, i int) string {
	var buf [8]byte
	return kind + "[" + string(conv.Itoa(buf[:], int64(i))) + "]"
}

// pins checks validity and in-record uniqueness.
func (v *validator) pins(where string, roles []periph.PinRole) {
	seen := make(map[periph.Pin]string, len(roles))
	for _, r := range roles {
		if !r.Pin.Valid() {
			v.fail(errcode.UnknownPin, where, string(r.Func))
			continue
		}
		if prev, dup := seen[r.Pin]; dup {
			v.fail(errcode.PinConflict, where, r.Pin.String()+" is both "+prev+" and "+string(r.Func))
			continue
		}
		seen[r.Pin] = string(r.Func)
	}
}

func (v *validator) clock(where string, b periph.Bus, m periph.Mask, single bool) {
	if !b.Owns(m) || (single && !m.Single()) {
		v.fail(errcode.BadClockMask, where, b.String())
	}
}

// vector checks that the bound symbol is installed at the record's IRQ.
func (v *validator) vector(where string, irq periph.IRQn, isr periph.ISR) {
	n, ok := isr.IRQ()
	if !ok {
		v.fail(errcode.UnknownVector, where, string(isr))
		return
	}
	if n != irq {
		v.fail(errcode.ISRMismatch, where, string(isr))
	}
}

func (v *validator) distinct(kind string, isrs []periph.ISR) {
	seen := make(map[periph.ISR]int, len(isrs))
	for i, s := range isrs {
		if j, dup := seen[s]; dup {
			v.fail(errcode.DuplicateISR, op(kind, i), string(s)+" already bound to "+op(kind, j))
			continue
		}
		seen[s] = i
	}
}

func (v *validator) dmaLink(where string, o periph.OptDMA) {
	l, ok := o.Get()
	if !ok {
		return
	}
	if !periph.InRange(l.Stream, DMANumOf) {
		v.fail(errcode.IndexOutOfRange, where, "dma stream")
	}
	if l.Channel > 15 {
		v.fail(errcode.IndexOutOfRange, where, "dma channel")
	}
}

func (v *validator) uarts() {
	for i := range UARTConfig {
		c := &UARTConfig[i]
		where := op("uart", i)
		v.pins(where, c.Pins())
		v.clock(where, c.Bus, c.Mask, true)
		v.vector(where, c.IRQ, UARTISR[i])
		v.dmaLink(where, c.DMA)
	}
	v.distinct("uart", UARTISR[:])
}

func (v *validator) spis() {
	for i := range SPIConfig {
		c := &SPIConfig[i]
		where := op("spi", i)
		v.pins(where, c.Pins())
		v.clock(where, c.Bus, c.Mask, true)
		if c.SSel == periph.Undef {
			v.fail(errcode.Incomplete, where, "no chip-select line")
		}
		switch {
		case c.Div == nil:
			v.fail(errcode.Incomplete, where, "no divider table")
		case *c.Div != DivRow(BusHz(c.Bus)):
			v.fail(errcode.DivTableDrift, where, c.Bus.String())
		}
	}
}

func (v *validator) i2cs() {
	for i := range I2CConfig {
		c := &I2CConfig[i]
		where := op("i2c", i)
		v.pins(where, c.Pins())
		v.clock(where, c.Bus, c.Mask, true)
		v.vector(where, c.IRQ, I2CISR[i])
	}
	v.distinct("i2c", I2CISR[:])
}

func (v *validator) dmas() {
	streams := make(map[uint8]int, DMANumOf)
	for i := range DMAConfig {
		c := DMAConfig[i]
		where := op("dma", i)
		if c.Stream > 15 {
			v.fail(errcode.IndexOutOfRange, where, "stream")
			continue
		}
		if j, dup := streams[c.Stream]; dup {
			v.fail(errcode.Conflict, where, "stream shared with "+op("dma", j))
		}
		streams[c.Stream] = i
		if DMAISR[i] != periph.DMAStreamISR(c.Stream) {
			v.fail(errcode.ISRMismatch, where, string(DMAISR[i]))
		}
	}
	v.distinct("dma", DMAISR[:])
}

func (v *validator) eths() {
	for i := range ETHConfig {
		c := &ETHConfig[i]
		where := op("eth", i)
		v.pins(where, c.PinRoles())
		v.clock(where, c.Bus, c.Mask, false)
		if _, ok := c.IRQ.ISR(); !ok {
			v.fail(errcode.UnknownVector, where, "eth irq")
		}
		v.dmaLink(where, c.DMA)
		if l, ok := c.DMA.Get(); ok && periph.InRange(l.Stream, DMANumOf) {
			if DMAISR[l.Stream] != ETHDMAISR {
				v.fail(errcode.ISRMismatch, where, string(ETHDMAISR))
			}
		}
	}
}

func (v *validator) timers() {
	for i := range TimerConfig {
		c := &TimerConfig[i]
		where := op("timer", i)
		v.clock(where, c.Bus, c.Mask, true)
		v.vector(where, c.IRQ, TimerISR[i])
	}
	v.distinct("timer", TimerISR[:])
}
