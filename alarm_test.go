package pcf85063a

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestSetAlarmFields(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	c.Assert(d.SetAlarmSeconds(59), qt.IsNil)
	c.Assert(d.SetAlarmMinutes(30), qt.IsNil)
	c.Assert(d.SetAlarmHours(23), qt.IsNil)
	c.Assert(d.SetAlarmDay(31), qt.IsNil)
	c.Assert(d.SetAlarmWeekday(time.Saturday), qt.IsNil)

	c.Assert(f.registers[SecondAlarm], qt.Equals, uint8(0x59))
	c.Assert(f.registers[MinuteAlarm], qt.Equals, uint8(0x30))
	c.Assert(f.registers[HourAlarm], qt.Equals, uint8(0x23))
	c.Assert(f.registers[DayAlarm], qt.Equals, uint8(0x31))
	c.Assert(f.registers[WeekdayAlarm], qt.Equals, uint8(0x06))
}

func TestSetAlarmOutOfRange(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	c.Assert(d.SetAlarmSeconds(60), qt.ErrorIs, ErrInvalidData)
	c.Assert(d.SetAlarmMinutes(60), qt.ErrorIs, ErrInvalidData)
	c.Assert(d.SetAlarmHours(24), qt.ErrorIs, ErrInvalidData)
	c.Assert(d.SetAlarmDay(0), qt.ErrorIs, ErrInvalidData)
	c.Assert(d.SetAlarmDay(32), qt.ErrorIs, ErrInvalidData)
	c.Assert(d.SetAlarmWeekday(time.Weekday(7)), qt.ErrorIs, ErrInvalidData)
	c.Assert(f.log, qt.HasLen, 0)
}

func TestSetAlarmPreservesEnableBit(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	// Disabled field stays disabled when its value changes.
	f.registers[MinuteAlarm] = aenMinute | 0x15
	c.Assert(d.SetAlarmMinutes(45), qt.IsNil)
	c.Assert(f.registers[MinuteAlarm], qt.Equals, uint8(aenMinute|0x45))

	// Enabled field stays enabled.
	f.registers[HourAlarm] = 0x08
	c.Assert(d.SetAlarmHours(9), qt.IsNil)
	c.Assert(f.registers[HourAlarm], qt.Equals, uint8(0x09))
}

func TestControlAlarmPreservesValueBits(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	f.registers[SecondAlarm] = aenSecond | 0x59
	c.Assert(d.ControlAlarmSeconds(On), qt.IsNil)
	c.Assert(f.registers[SecondAlarm], qt.Equals, uint8(0x59))

	c.Assert(d.ControlAlarmSeconds(Off), qt.IsNil)
	c.Assert(f.registers[SecondAlarm], qt.Equals, uint8(aenSecond|0x59))
}

func TestAlarmEnabledQueries(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	// The enable bits read inverted: a set AEN bit means disabled.
	f.registers[DayAlarm] = aenDay | 0x01
	enabled, err := d.AlarmDayEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(enabled, qt.IsFalse)

	c.Assert(d.ControlAlarmDay(On), qt.IsNil)
	enabled, err = d.AlarmDayEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(enabled, qt.IsTrue)
}

func TestAlarmGettersMaskEnableBit(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	f.registers[SecondAlarm] = aenSecond | 0x59
	f.registers[MinuteAlarm] = 0x30
	f.registers[HourAlarm] = aenHour | 0x23
	f.registers[DayAlarm] = aenDay | 0x31
	f.registers[WeekdayAlarm] = aenWeekday | 0x03

	v, err := d.AlarmSeconds()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(59))
	v, err = d.AlarmMinutes()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(30))
	v, err = d.AlarmHours()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(23))
	v, err = d.AlarmDay()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, uint8(31))
	w, err := d.AlarmWeekday()
	c.Assert(err, qt.IsNil)
	c.Assert(w, qt.Equals, time.Wednesday)
}

func TestSetAlarmTime(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	c.Assert(d.SetAlarmTime(time.Date(2022, time.May, 1, 7, 30, 0, 0, time.UTC)), qt.IsNil)
	c.Assert(f.registers[HourAlarm], qt.Equals, uint8(0x07))
	c.Assert(f.registers[MinuteAlarm], qt.Equals, uint8(0x30))
	c.Assert(f.registers[SecondAlarm], qt.Equals, uint8(0x00))
}

func TestDisableAllAlarms(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	f.registers[SecondAlarm] = 0x10
	f.registers[MinuteAlarm] = 0x20
	c.Assert(d.DisableAllAlarms(), qt.IsNil)

	for _, reg := range []uint8{SecondAlarm, MinuteAlarm, HourAlarm, DayAlarm, WeekdayAlarm} {
		c.Assert(f.registers[reg]&0x80, qt.Equals, uint8(0x80))
	}
	// Values survive the disable.
	c.Assert(f.registers[SecondAlarm], qt.Equals, uint8(aenSecond|0x10))
	c.Assert(f.registers[MinuteAlarm], qt.Equals, uint8(aenMinute|0x20))
}

func TestAlarmInterrupt(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	c.Assert(d.ControlAlarmInterrupt(On), qt.IsNil)
	enabled, err := d.AlarmInterruptEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(enabled, qt.IsTrue)
	c.Assert(f.registers[Control2]&aie, qt.Equals, uint8(aie))

	c.Assert(d.ControlAlarmInterrupt(Off), qt.IsNil)
	enabled, err = d.AlarmInterruptEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(enabled, qt.IsFalse)
}

func TestClearAlarmFlagIsolation(t *testing.T) {
	c := qt.New(t)
	f := &fakeI2C{}
	d := New(f)

	// Both flags raised, interrupt enabled, CLKOUT configured.
	f.registers[Control2] = aie | af | tf | 0x05

	flag, err := d.AlarmFlag()
	c.Assert(err, qt.IsNil)
	c.Assert(flag, qt.IsTrue)

	c.Assert(d.ClearAlarmFlag(), qt.IsNil)

	flag, err = d.AlarmFlag()
	c.Assert(err, qt.IsNil)
	c.Assert(flag, qt.IsFalse)
	// Everything else in the register is untouched.
	c.Assert(f.registers[Control2], qt.Equals, uint8(aie|tf|0x05))
}
