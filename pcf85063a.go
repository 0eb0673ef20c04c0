// Package pcf85063a implements a driver for the PCF85063A Real-Time Clock
// (RTC), including the date/time registers, the per-field alarm, the
// countdown timer and the CLKOUT pin.
//
// All date/time transfers use a single burst transaction covering the whole
// seconds..years block, as the datasheet recommends: the chip latches every
// time register on the first access, so a burst read can never observe the
// seconds rolling over halfway through.
//
// Datasheet: https://www.nxp.com/docs/en/data-sheet/PCF85063A.pdf
package pcf85063a

import (
	"errors"

	"tinygo.org/x/drivers"
)

// ErrInvalidData is returned when a caller-supplied value is out of range for
// its register. It is always returned before anything is written to the bus,
// so the device is left untouched.
var ErrInvalidData = errors.New("pcf85063a: invalid input data")

// Control enables or disables a chip feature such as an alarm field, an
// interrupt or the countdown timer.
type Control uint8

const (
	Off Control = iota
	On
)

// OffsetMode selects how often the aging offset correction is applied.
type OffsetMode uint8

const (
	// OffsetNormal applies the correction every two hours (4.34 ppm steps).
	OffsetNormal OffsetMode = iota
	// OffsetCourse applies the correction every four minutes (4.069 ppm steps).
	OffsetCourse
)

// Capacitance selects the oscillator load capacitance; it must match the
// crystal on the board.
type Capacitance uint8

const (
	Capacitance7pF Capacitance = iota
	Capacitance12pF5
)

type Config struct {
	Address     uint8
	Capacitance Capacitance
}

// Device wraps an I2C connection to a PCF85063A device.
type Device struct {
	bus  drivers.I2C
	addr uint8
}

// New creates a new driver on the specified preconfigured I2C bus. The
// datasheet claims a maximum bus speed of 400 kHz.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:  bus,
		addr: DefaultAddress,
	}
}

// Configure applies the configuration. It selects the oscillator load
// capacitance and forces 24-hour mode without disturbing the other Control_1
// bits, so a running clock keeps running.
func (d *Device) Configure(c Config) error {
	if c.Address == 0 {
		c.Address = DefaultAddress
	}
	d.addr = c.Address

	data, err := d.readRegister(Control1)
	if err != nil {
		return err
	}
	data &^= capSel | mode12
	if c.Capacitance == Capacitance12pF5 {
		data |= capSel
	}
	return d.writeRegister(Control1, data)
}

// Reset performs a software reset. All registers revert to their power-on
// defaults and the prescaler is cleared.
func (d *Device) Reset() error {
	return d.writeRegister(Control1, softReset)
}

// LostPower reports whether the oscillator has stopped since the time was
// last set, meaning the clock reading cannot be trusted. The flag is cleared
// by setting the time.
func (d *Device) LostPower() (bool, error) {
	return d.registerBitSet(Seconds, osFlag)
}

// ReadRAM reads the battery-backed general purpose RAM byte.
func (d *Device) ReadRAM() (byte, error) {
	return d.readRegister(RAMByte)
}

// WriteRAM writes the battery-backed general purpose RAM byte.
func (d *Device) WriteRAM(b byte) error {
	return d.writeRegister(RAMByte, b)
}

// SetOffset programs the aging offset register with a correction value in
// the range [-64, 63]. The step size depends on the mode, see OffsetMode.
func (d *Device) SetOffset(mode OffsetMode, offset int8) error {
	if offset < -64 || offset > 63 {
		return ErrInvalidData
	}
	data := uint8(offset) & ^uint8(offsetModeBit)
	if mode == OffsetCourse {
		data |= offsetModeBit
	}
	return d.writeRegister(Offset, data)
}

// writeRegister writes a single register.
func (d *Device) writeRegister(register, data uint8) error {
	buf := [1]byte{data}
	return d.bus.WriteRegister(d.addr, register, buf[:])
}

// readRegister reads a single register.
func (d *Device) readRegister(register uint8) (uint8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.addr, register, buf[:])
	return buf[0], err
}

// registerBitSet reports whether any bit of the mask is set.
func (d *Device) registerBitSet(register, mask uint8) (bool, error) {
	data, err := d.readRegister(register)
	if err != nil {
		return false, err
	}
	return data&mask != 0, nil
}

// setRegisterBit sets the masked bits, leaving the rest of the register
// unchanged. The write is skipped when the bits are already set.
func (d *Device) setRegisterBit(register, mask uint8) error {
	data, err := d.readRegister(register)
	if err != nil {
		return err
	}
	if data&mask == mask {
		return nil
	}
	return d.writeRegister(register, data|mask)
}

// clearRegisterBit clears the masked bits, leaving the rest of the register
// unchanged. The write is skipped when the bits are already clear.
func (d *Device) clearRegisterBit(register, mask uint8) error {
	data, err := d.readRegister(register)
	if err != nil {
		return err
	}
	if data&mask == 0 {
		return nil
	}
	return d.writeRegister(register, data&^mask)
}

// decToBcd converts int to BCD
func decToBcd(dec int) uint8 {
	return uint8(dec + 6*(dec/10))
}

// bcdToDec converts BCD to int. Flag bits sharing the register must be
// masked off before conversion.
func bcdToDec(bcd uint8) int {
	return int(bcd - 6*(bcd>>4))
}
