package board

import (
	"miot-f767zi/periph"
	"miot-f767zi/x/mathx"
)

// Rows of SPIDivTable.
const (
	divAPB1 = iota
	divAPB2
)

// SPIDivTable holds the SPI BR prescaler field per bus and speed class,
// for APB1 @ 54 MHz and APB2 @ 108 MHz. Regenerate with ComputeDiv when
// the clock tree changes.
var SPIDivTable = [2]periph.SPIDivRow{
	divAPB1: {7, 7, 5, 3, 2},
	divAPB2: {7, 7, 6, 4, 3},
}

// spiBRMax is the widest BR field value (fPCLK/256).
const spiBRMax = 7

// ComputeDiv returns the smallest BR value whose SCK (busHz / 2^(BR+1))
// does not exceed targetHz. Targets below fPCLK/256 saturate at BR=7.
func ComputeDiv(busHz, targetHz uint32) uint8 {
	if targetHz == 0 {
		return spiBRMax
	}
	need := mathx.CeilDiv(busHz, targetHz)
	return uint8(mathx.Clamp(mathx.Log2Ceil(need)-1, 0, spiBRMax))
}

// DivRow recomputes the divider row for a bus clock.
func DivRow(busHz uint32) periph.SPIDivRow {
	var r periph.SPIDivRow
	for c := periph.SPIClk(0); c < periph.SPIClkCount; c++ {
		r[c] = ComputeDiv(busHz, c.Hz())
	}
	return r
}
