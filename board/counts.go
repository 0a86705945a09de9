package board

// Table sizes. Tables are arrays, so len is a compile-time constant and
// a count can never drift from its table.
const (
	DMANumOf   = len(DMAConfig)
	I2CNumOf   = len(I2CConfig)
	UARTNumOf  = len(UARTConfig)
	SPINumOf   = len(SPIConfig)
	ETHNumOf   = len(ETHConfig)
	TimerNumOf = len(TimerConfig)
)

// ISR bindings must have exactly one entry per table entry. A negative
// difference overflows uint and stops the build.
const (
	_ = uint(len(UARTISR) - UARTNumOf)
	_ = uint(UARTNumOf - len(UARTISR))
	_ = uint(len(I2CISR) - I2CNumOf)
	_ = uint(I2CNumOf - len(I2CISR))
	_ = uint(len(DMAISR) - DMANumOf)
	_ = uint(DMANumOf - len(DMAISR))
	_ = uint(len(TimerISR) - TimerNumOf)
	_ = uint(TimerNumOf - len(TimerISR))
)
