package board

import "miot-f767zi/periph"

// TimerConfig: TIM2 is the 32-bit system timer.
var TimerConfig = [...]periph.TimerConf{
	TimerSys: {
		Dev:  periph.TIM2,
		Max:  0xffffffff,
		Mask: periph.RCC_APB1ENR_TIM2EN,
		Bus:  periph.APB1,
		IRQ:  periph.IRQ_TIM2,
	},
}

var TimerISR = [...]periph.ISR{
	TimerSys: periph.ISR_TIM2,
}
