package main

import (
	"time"

	"miot-f767zi/board"
	"miot-f767zi/devices"
	"miot-f767zi/internal/platform"
)

func main() {
	cpu, pins := platform.Default()
	board.Init(cpu, pins)

	// The console is USART3 on the ST-Link VCP; it is live once Init returns.
	println("boot", board.Selected.Name)

	if err := board.Validate(); err != nil {
		println("[board] table defects:", err.Error())
	}
	if buses, ok := platform.DefaultBuses(); ok {
		if _, err := devices.AttachAll(buses, pins); err != nil {
			println("[devices] attach:", err.Error())
		}
	} else {
		println("[devices] no bus provider; drivers own their controllers")
	}

	tick := time.NewTicker(1 * time.Second)
	defer tick.Stop()

	for t := range tick.C {
		println(t.Format("15:04:05"), "Heartbeat")
	}
}
