package pcf85063a

const (
	// DefaultAddress is the 7-bit I2C address of the PCF85063A.
	DefaultAddress = 0x51

	// Control and status registers.
	Control1 = 0x00 // Control_1: stop bit, 12/24 mode, capacitor selection, software reset
	Control2 = 0x01 // Control_2: alarm/timer interrupt enables and flags, CLKOUT control
	Offset   = 0x02 // Aging offset register
	RAMByte  = 0x03 // One byte of battery-backed general purpose RAM

	// Time and date registers. Seconds through Years are consecutive so the
	// whole block can be transferred in one transaction.
	Seconds  = 0x04 // Also holds the oscillator-stop flag in bit 7
	Minutes  = 0x05
	Hours    = 0x06
	Days     = 0x07
	Weekdays = 0x08
	Months   = 0x09
	Years    = 0x0A // Offset from the year 2000

	// Alarm registers, one per matched field.
	SecondAlarm  = 0x0B
	MinuteAlarm  = 0x0C
	HourAlarm    = 0x0D
	DayAlarm     = 0x0E
	WeekdayAlarm = 0x0F

	// Countdown timer registers.
	TimerValue = 0x10
	TimerMode  = 0x11
)

// Control_1 bits.
const (
	extTest = 0x80 // external clock test mode
	stop    = 0x20 // freeze the clock divider chain
	cie     = 0x04 // correction interrupt enable
	mode12  = 0x02 // 12-hour mode when set; this driver keeps it clear
	capSel  = 0x01 // oscillator load capacitance, 0 = 7 pF, 1 = 12.5 pF

	// Writing this value to Control_1 triggers a software reset. The
	// datasheet requires the exact pattern, it is not a bitmask.
	softReset = 0x58
)

// Control_2 bits.
const (
	aie     = 0x80 // alarm interrupt enable
	af      = 0x40 // alarm flag, set by the chip on alarm match
	mi      = 0x20 // minute interrupt enable
	hmi     = 0x10 // half-minute interrupt enable
	tf      = 0x08 // timer flag, set by the chip on countdown expiry
	cofMask = 0x07 // CLKOUT frequency selection
)

// Seconds register bit 7: oscillator stop, set by the chip when the
// oscillator was interrupted (power loss). Cleared by writing the seconds
// register.
const osFlag = 0x80

// Per-field alarm enable bits. On the PCF85063A the polarity is the same for
// all five alarm registers: the field takes part in alarm matching when its
// AEN bit is 0, and is ignored when the bit is 1. The bits are kept as
// separate constants because the polarity and position are properties of each
// register, not of the chip as a whole.
const (
	aenSecond  = 0x80 // second alarm: 0 = enabled, 1 = disabled
	aenMinute  = 0x80 // minute alarm: 0 = enabled, 1 = disabled
	aenHour    = 0x80 // hour alarm: 0 = enabled, 1 = disabled
	aenDay     = 0x80 // day alarm: 0 = enabled, 1 = disabled
	aenWeekday = 0x80 // weekday alarm: 0 = enabled, 1 = disabled
)

// Timer_mode bits.
const (
	tcfMask = 0x18 // timer source clock frequency
	te      = 0x04 // timer enable
	tie     = 0x02 // timer interrupt enable
	tiTP    = 0x01 // timer interrupt as pulse instead of level
)

// Offset register: bit 7 selects the correction interval, bits 6..0 hold a
// signed 7-bit correction value.
const offsetModeBit = 0x80

// Value bits per register; everything above these is a flag that must be
// masked off before BCD decoding.
const (
	secondsMask = 0x7F
	minutesMask = 0x7F
	hoursMask   = 0x3F
	daysMask    = 0x3F
	weekdayMask = 0x07
	monthsMask  = 0x1F
)
