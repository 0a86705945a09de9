// cmd/pinmap/main.go
package main

import (
	"fmt"
	"os"

	"golang.org/x/exp/slices"

	"miot-f767zi/board"
	"miot-f767zi/periph"
)

// ---------- Output ----------

func printf(format string, a ...any) { print(fmt.Sprintf(format, a...)) }

func section(name string) { printf("\n== %s ==\n", name) }

func dma(o periph.OptDMA) string {
	l, ok := o.Get()
	if !ok {
		return "-"
	}
	return fmt.Sprintf("dma[%d] ch%d", l.Stream, l.Channel)
}

// ---------- Tables ----------

func uarts() {
	section("uart")
	for i := range board.UARTConfig {
		c := &board.UARTConfig[i]
		printf("uart[%d] %-22s rx=%-4s tx=%-4s %s/%s %s irq=%d isr=%s %s\n",
			i, c.Dev, c.RX, c.TX, c.RXAF, c.TXAF, c.Bus, c.IRQ, board.UARTISR[i], dma(c.DMA))
	}
}

func spis() {
	section("spi")
	for i := range board.SPIConfig {
		c := &board.SPIConfig[i]
		printf("spi[%d]  %-22s mosi=%-4s miso=%-4s sck=%-4s ssel=%-4s %s %s div=%v\n",
			i, c.Dev, c.MOSI, c.MISO, c.SCLK, c.SSel, c.AF, c.Bus, *c.Div)
	}
}

func i2cs() {
	section("i2c")
	for i := range board.I2CConfig {
		c := &board.I2CConfig[i]
		printf("i2c[%d]  %-22s scl=%-4s sda=%-4s %s %dHz irq=%d isr=%s\n",
			i, c.Dev, c.SCL, c.SDA, c.Bus, c.Speed.Hz(), c.IRQ, board.I2CISR[i])
	}
}

func dmas() {
	section("dma")
	if !board.DMAEnabled {
		println("disabled (periph_nodma)")
		return
	}
	for i, c := range board.DMAConfig {
		ctrl, stream := c.Controller()
		printf("dma[%d]  DMA%d stream %d isr=%s\n", i, ctrl, stream, board.DMAISR[i])
	}
}

func eths() {
	section("eth")
	for i := range board.ETHConfig {
		c := &board.ETHConfig[i]
		printf("eth[%d]  %s phy=%#02x %s %s\n", i, c.Dev, c.PHYAddr, c.Bus, dma(c.DMA))
		for _, r := range c.PinRoles() {
			printf("        %-18s %s\n", r.Func, r.Pin)
		}
	}
}

func usage() {
	section("pins")
	u := board.PinUsage()
	pins := make([]periph.Pin, 0, len(u))
	for p := range u {
		pins = append(pins, p)
	}
	slices.Sort(pins)
	for _, p := range pins {
		printf("%-5s %v\n", p, u[p])
	}
	for p, users := range board.Overlaps() {
		if _, ok := board.SharedPins[p]; !ok {
			printf("[pinmap] undocumented overlap on %s: %v\n", p, users)
		}
	}
}

// ---------- Main ----------

func main() {
	printf("%s (%s)\n", board.Selected.Name, board.Selected.CPU)
	uarts()
	spis()
	i2cs()
	dmas()
	eths()
	usage()

	if err := board.Validate(); err != nil {
		printf("\n[pinmap] FAIL\n%v\n", err)
		os.Exit(1)
	}
	println("\n[pinmap] PASS")
}
