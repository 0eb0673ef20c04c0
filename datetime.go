package pcf85063a

import "time"

// Set sets the date and time, writing all seven registers in one burst
// transaction so the chip starts counting from a consistent value. Writing
// the seconds register also clears the oscillator-stop flag, so LostPower
// reports false afterwards.
//
// The chip stores the year as an offset from 2000; times outside 2000-2099
// are rejected with ErrInvalidData before anything is written.
func (d *Device) Set(t time.Time) error {
	if t.Year() < 2000 || t.Year() > 2099 {
		return ErrInvalidData
	}

	buf := []byte{
		decToBcd(t.Second()),
		decToBcd(t.Minute()),
		decToBcd(t.Hour()),
		decToBcd(t.Day()),
		decToBcd(int(t.Weekday())),
		decToBcd(int(t.Month())),
		decToBcd(t.Year() - 2000),
	}
	return d.bus.WriteRegister(d.addr, Seconds, buf)
}

// SetTime sets the time of day only, leaving the date registers untouched.
// Useful for clock-only applications that never read the calendar.
func (d *Device) SetTime(t time.Time) error {
	buf := []byte{
		decToBcd(t.Second()),
		decToBcd(t.Minute()),
		decToBcd(t.Hour()),
	}
	return d.bus.WriteRegister(d.addr, Seconds, buf)
}

// Now reads the current date and time. All seven registers are read in a
// single burst transaction; the chip latches the whole block on the first
// access, so the result can never mix values from both sides of a seconds
// rollover.
func (d *Device) Now() (time.Time, error) {
	buf := [7]byte{}
	err := d.bus.ReadRegister(d.addr, Seconds, buf[:])
	if err != nil {
		return time.Time{}, err
	}

	seconds := bcdToDec(buf[0] & secondsMask)
	minute := bcdToDec(buf[1] & minutesMask)
	hour := bcdToDec(buf[2] & hoursMask)
	day := bcdToDec(buf[3] & daysMask)
	// buf[4] is the weekday; time.Date derives it from the date itself.
	month := time.Month(bcdToDec(buf[5] & monthsMask))
	year := bcdToDec(buf[6]) + 2000

	return time.Date(year, month, day, hour, minute, seconds, 0, time.UTC), nil
}
