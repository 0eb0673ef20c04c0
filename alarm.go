package pcf85063a

import "time"

// The alarm compares each enabled field against the clock; the alarm flag is
// raised when every enabled field matches at once. Setting a field's value
// and enabling the field are independent operations: the setters below keep
// the enable bit exactly as it was, and the Control* toggles keep the stored
// value exactly as it was.

// SetAlarmSeconds sets the second alarm register [0-59], keeping the enable
// bit unchanged.
func (d *Device) SetAlarmSeconds(seconds uint8) error {
	if seconds > 59 {
		return ErrInvalidData
	}
	return d.setAlarmField(SecondAlarm, aenSecond, seconds)
}

// SetAlarmMinutes sets the minute alarm register [0-59], keeping the enable
// bit unchanged.
func (d *Device) SetAlarmMinutes(minutes uint8) error {
	if minutes > 59 {
		return ErrInvalidData
	}
	return d.setAlarmField(MinuteAlarm, aenMinute, minutes)
}

// SetAlarmHours sets the hour alarm register [0-23], keeping the enable bit
// unchanged.
func (d *Device) SetAlarmHours(hours uint8) error {
	if hours > 23 {
		return ErrInvalidData
	}
	return d.setAlarmField(HourAlarm, aenHour, hours)
}

// SetAlarmDay sets the day alarm register [1-31], keeping the enable bit
// unchanged.
func (d *Device) SetAlarmDay(day uint8) error {
	if day < 1 || day > 31 {
		return ErrInvalidData
	}
	return d.setAlarmField(DayAlarm, aenDay, day)
}

// SetAlarmWeekday sets the weekday alarm register, keeping the enable bit
// unchanged.
func (d *Device) SetAlarmWeekday(weekday time.Weekday) error {
	if weekday < time.Sunday || weekday > time.Saturday {
		return ErrInvalidData
	}
	return d.setAlarmField(WeekdayAlarm, aenWeekday, uint8(weekday))
}

// SetAlarmTime sets the hour, minute and second alarm registers from t in
// one go, keeping each field's enable bit unchanged.
func (d *Device) SetAlarmTime(t time.Time) error {
	if err := d.SetAlarmHours(uint8(t.Hour())); err != nil {
		return err
	}
	if err := d.SetAlarmMinutes(uint8(t.Minute())); err != nil {
		return err
	}
	return d.SetAlarmSeconds(uint8(t.Second()))
}

// setAlarmField replaces the BCD value bits of an alarm register while
// preserving the state of its enable bit.
func (d *Device) setAlarmField(register, enableBit, value uint8) error {
	data, err := d.readRegister(register)
	if err != nil {
		return err
	}
	data &= enableBit
	return d.writeRegister(register, data|decToBcd(int(value)))
}

// AlarmSeconds reads the second alarm setting.
func (d *Device) AlarmSeconds() (uint8, error) {
	return d.alarmField(SecondAlarm, aenSecond)
}

// AlarmMinutes reads the minute alarm setting.
func (d *Device) AlarmMinutes() (uint8, error) {
	return d.alarmField(MinuteAlarm, aenMinute)
}

// AlarmHours reads the hour alarm setting.
func (d *Device) AlarmHours() (uint8, error) {
	return d.alarmField(HourAlarm, aenHour)
}

// AlarmDay reads the day alarm setting.
func (d *Device) AlarmDay() (uint8, error) {
	return d.alarmField(DayAlarm, aenDay)
}

// AlarmWeekday reads the weekday alarm setting.
func (d *Device) AlarmWeekday() (time.Weekday, error) {
	v, err := d.alarmField(WeekdayAlarm, aenWeekday)
	return time.Weekday(v), err
}

func (d *Device) alarmField(register, enableBit uint8) (uint8, error) {
	data, err := d.readRegister(register)
	if err != nil {
		return 0, err
	}
	return uint8(bcdToDec(data &^ enableBit)), nil
}

// ControlAlarmSeconds enables (On) or disables (Off) second alarm matching
// without disturbing the stored value.
func (d *Device) ControlAlarmSeconds(c Control) error {
	return d.controlAlarmField(SecondAlarm, aenSecond, c)
}

// ControlAlarmMinutes enables (On) or disables (Off) minute alarm matching
// without disturbing the stored value.
func (d *Device) ControlAlarmMinutes(c Control) error {
	return d.controlAlarmField(MinuteAlarm, aenMinute, c)
}

// ControlAlarmHours enables (On) or disables (Off) hour alarm matching
// without disturbing the stored value.
func (d *Device) ControlAlarmHours(c Control) error {
	return d.controlAlarmField(HourAlarm, aenHour, c)
}

// ControlAlarmDay enables (On) or disables (Off) day alarm matching without
// disturbing the stored value.
func (d *Device) ControlAlarmDay(c Control) error {
	return d.controlAlarmField(DayAlarm, aenDay, c)
}

// ControlAlarmWeekday enables (On) or disables (Off) weekday alarm matching
// without disturbing the stored value.
func (d *Device) ControlAlarmWeekday(c Control) error {
	return d.controlAlarmField(WeekdayAlarm, aenWeekday, c)
}

// ControlAlarmTime enables or disables the hour, minute and second alarm
// fields together.
func (d *Device) ControlAlarmTime(c Control) error {
	if err := d.ControlAlarmSeconds(c); err != nil {
		return err
	}
	if err := d.ControlAlarmMinutes(c); err != nil {
		return err
	}
	return d.ControlAlarmHours(c)
}

// DisableAllAlarms switches off every alarm field at once.
func (d *Device) DisableAllAlarms() error {
	if err := d.ControlAlarmSeconds(Off); err != nil {
		return err
	}
	if err := d.ControlAlarmMinutes(Off); err != nil {
		return err
	}
	if err := d.ControlAlarmHours(Off); err != nil {
		return err
	}
	if err := d.ControlAlarmDay(Off); err != nil {
		return err
	}
	return d.ControlAlarmWeekday(Off)
}

// controlAlarmField toggles a single enable bit. A set bit disables the
// field on this chip, so On clears and Off sets.
func (d *Device) controlAlarmField(register, enableBit uint8, c Control) error {
	if c == On {
		return d.clearRegisterBit(register, enableBit)
	}
	return d.setRegisterBit(register, enableBit)
}

// AlarmSecondsEnabled reports whether the second alarm field is enabled.
func (d *Device) AlarmSecondsEnabled() (bool, error) {
	return d.alarmFieldEnabled(SecondAlarm, aenSecond)
}

// AlarmMinutesEnabled reports whether the minute alarm field is enabled.
func (d *Device) AlarmMinutesEnabled() (bool, error) {
	return d.alarmFieldEnabled(MinuteAlarm, aenMinute)
}

// AlarmHoursEnabled reports whether the hour alarm field is enabled.
func (d *Device) AlarmHoursEnabled() (bool, error) {
	return d.alarmFieldEnabled(HourAlarm, aenHour)
}

// AlarmDayEnabled reports whether the day alarm field is enabled.
func (d *Device) AlarmDayEnabled() (bool, error) {
	return d.alarmFieldEnabled(DayAlarm, aenDay)
}

// AlarmWeekdayEnabled reports whether the weekday alarm field is enabled.
func (d *Device) AlarmWeekdayEnabled() (bool, error) {
	return d.alarmFieldEnabled(WeekdayAlarm, aenWeekday)
}

func (d *Device) alarmFieldEnabled(register, enableBit uint8) (bool, error) {
	set, err := d.registerBitSet(register, enableBit)
	return !set, err
}

// ControlAlarmInterrupt enables or disables the interrupt generated on the
// INT pin when the alarm flag is raised.
func (d *Device) ControlAlarmInterrupt(c Control) error {
	if c == On {
		return d.setRegisterBit(Control2, aie)
	}
	return d.clearRegisterBit(Control2, aie)
}

// AlarmInterruptEnabled reports whether the alarm interrupt is enabled.
func (d *Device) AlarmInterruptEnabled() (bool, error) {
	return d.registerBitSet(Control2, aie)
}

// AlarmFlag reports whether an alarm event has happened. The flag stays set
// until cleared with ClearAlarmFlag.
func (d *Device) AlarmFlag() (bool, error) {
	return d.registerBitSet(Control2, af)
}

// ClearAlarmFlag clears the alarm flag. The timer flag and the interrupt
// enables share the register and are left untouched.
func (d *Device) ClearAlarmFlag() error {
	return d.clearRegisterBit(Control2, af)
}
