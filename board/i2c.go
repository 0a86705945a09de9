package board

import "miot-f767zi/periph"

// I2CConfig binds each logical I2C bus to its controller.
var I2CConfig = [...]periph.I2CConf{
	// IRQ is the error vector, to agree with isr_i2c2_er in I2CISR. The
	// RIOT periph_conf.h record names I2C2_EV_IRQn instead.
	I2CSensors: {
		Dev:   periph.I2C2,
		Speed: periph.I2CSpeedNormal,
		SCL:   periph.PB10,
		SDA:   periph.PB11,
		SCLAF: periph.AF4,
		SDAAF: periph.AF4,
		Bus:   periph.APB1,
		Mask:  periph.RCC_APB1ENR_I2C2EN,
		IRQ:   periph.IRQ_I2C2_ER,
	},
	I2CConnector: {
		Dev:   periph.I2C4,
		Speed: periph.I2CSpeedNormal,
		SCL:   periph.PF14,
		SDA:   periph.PF15,
		SCLAF: periph.AF4,
		SDAAF: periph.AF4,
		Bus:   periph.APB1,
		Mask:  periph.RCC_APB1ENR_I2C4EN,
		IRQ:   periph.IRQ_I2C4_ER,
	},
}

// I2CISR is installed at the error vector of each bus.
var I2CISR = [...]periph.ISR{
	I2CSensors:   periph.ISR_I2C2_ER,
	I2CConnector: periph.ISR_I2C4_ER,
}
