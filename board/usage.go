package board

import (
	"periph.io/x/conn/v3/pin"

	"miot-f767zi/periph"
)

// PinUsage maps every pin the board wires to the signals routed to it,
// across all tables, indicators, the button and device parameters.
func PinUsage() map[periph.Pin][]string {
	u := make(map[periph.Pin][]string)
	add := func(roles []periph.PinRole) {
		for _, r := range roles {
			u[r.Pin] = append(u[r.Pin], string(r.Func))
		}
	}
	for i := range UARTConfig {
		add(UARTConfig[i].Pins())
	}
	for i := range SPIConfig {
		add(SPIConfig[i].Pins())
	}
	for i := range I2CConfig {
		add(I2CConfig[i].Pins())
	}
	for i := range ETHConfig {
		add(ETHConfig[i].PinRoles())
	}
	add(boardRoles())
	return u
}

// Overlaps returns the pins used by more than one signal.
func Overlaps() map[periph.Pin][]string {
	o := make(map[periph.Pin][]string)
	for p, users := range PinUsage() {
		if len(users) > 1 {
			o[p] = users
		}
	}
	return o
}

func boardRoles() []periph.PinRole {
	r := []periph.PinRole{
		{Func: "LED0", Pin: Selected.LED0},
		{Func: "LED1", Pin: Selected.LED1},
		{Func: "LED2", Pin: Selected.LED2},
		{Func: "BTN0", Pin: Selected.Button},
		{Func: "CC110X_GDO0", Pin: CC110x.GDO0},
		{Func: "CC110X_GDO2", Pin: CC110x.GDO2},
		{Func: "SX127X_RESET", Pin: SX127x.Reset},
		{Func: "NRF24L01P_CE", Pin: NRF24L01P.CE},
		{Func: "NRF24L01P_IRQ", Pin: NRF24L01P.IRQ},
		{Func: "AT86RF2XX_INT", Pin: AT86RF2xx.Int},
		{Func: "AT86RF2XX_SLEEP", Pin: AT86RF2xx.Sleep},
		{Func: "AT86RF2XX_RESET", Pin: AT86RF2xx.Reset},
	}
	for i, p := range SX127x.DIO {
		r = append(r, periph.PinRole{Func: dioNames[i], Pin: p})
	}
	return r
}

var dioNames = [...]pin.Func{
	"SX127X_DIO0", "SX127X_DIO1", "SX127X_DIO2",
	"SX127X_DIO3", "SX127X_DIO4", "SX127X_DIO5",
}
