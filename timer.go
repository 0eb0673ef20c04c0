package pcf85063a

// TimerFrequency selects the countdown timer source clock. Together with the
// 8-bit timer value this gives periods from 244 microseconds to 4 hours 15
// minutes.
type TimerFrequency uint8

const (
	Timer4096Hz TimerFrequency = iota // 244 us resolution
	Timer64Hz                         // 15.6 ms resolution
	Timer1Hz                          // 1 s resolution
	Timer1_60Hz                       // 1 min resolution
)

// ClkoutFrequency selects the square wave generated on the CLKOUT pin.
type ClkoutFrequency uint8

const (
	Clkout32768Hz ClkoutFrequency = iota
	Clkout16384Hz
	Clkout8192Hz
	Clkout4096Hz
	Clkout2048Hz
	Clkout1024Hz
	Clkout1Hz
	ClkoutOff // CLKOUT pin held low
)

// SetTimerValue loads the countdown timer. The timer counts down from this
// value at the configured source clock frequency and raises the timer flag
// when it reaches zero. The full 8-bit range is valid.
func (d *Device) SetTimerValue(value uint8) error {
	return d.writeRegister(TimerValue, value)
}

// TimerValue reads the current countdown value.
func (d *Device) TimerValue() (uint8, error) {
	return d.readRegister(TimerValue)
}

// ControlTimer starts (On) or stops (Off) the countdown timer.
func (d *Device) ControlTimer(c Control) error {
	if c == On {
		return d.setRegisterBit(TimerMode, te)
	}
	return d.clearRegisterBit(TimerMode, te)
}

// TimerEnabled reports whether the countdown timer is running.
func (d *Device) TimerEnabled() (bool, error) {
	return d.registerBitSet(TimerMode, te)
}

// SetTimerFrequency selects the timer source clock, leaving the enable and
// interrupt bits unchanged.
func (d *Device) SetTimerFrequency(f TimerFrequency) error {
	if f > Timer1_60Hz {
		return ErrInvalidData
	}
	data, err := d.readRegister(TimerMode)
	if err != nil {
		return err
	}
	data = data&^tcfMask | uint8(f)<<3
	return d.writeRegister(TimerMode, data)
}

// ControlTimerInterrupt enables or disables the interrupt generated on the
// INT pin when the timer flag is raised.
func (d *Device) ControlTimerInterrupt(c Control) error {
	if c == On {
		return d.setRegisterBit(TimerMode, tie)
	}
	return d.clearRegisterBit(TimerMode, tie)
}

// ControlTimerPulse selects pulsed (On) or level (Off) timer interrupts.
// With level interrupts the INT pin stays asserted until the timer flag is
// cleared.
func (d *Device) ControlTimerPulse(c Control) error {
	if c == On {
		return d.setRegisterBit(TimerMode, tiTP)
	}
	return d.clearRegisterBit(TimerMode, tiTP)
}

// TimerFlag reports whether the countdown timer has expired. The flag stays
// set until cleared with ClearTimerFlag.
func (d *Device) TimerFlag() (bool, error) {
	return d.registerBitSet(Control2, tf)
}

// ClearTimerFlag clears the timer flag. The alarm flag and the interrupt
// enables share the register and are left untouched.
func (d *Device) ClearTimerFlag() error {
	return d.clearRegisterBit(Control2, tf)
}

// SetClkoutFrequency selects the CLKOUT pin frequency, leaving the interrupt
// bits and flags in Control_2 unchanged.
func (d *Device) SetClkoutFrequency(f ClkoutFrequency) error {
	if f > ClkoutOff {
		return ErrInvalidData
	}
	data, err := d.readRegister(Control2)
	if err != nil {
		return err
	}
	data = data&^cofMask | uint8(f)
	return d.writeRegister(Control2, data)
}
