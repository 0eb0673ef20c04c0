package pcf85063a

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeI2C)(nil)

var errBus = errors.New("bus failure")

// transaction records one register transfer as seen by the device,
// so tests can assert on transaction boundaries, not just final state.
type transaction struct {
	register uint8
	write    []byte
	read     int
}

// fakeI2C simulates the PCF85063A register file behind a drivers.I2C bus.
// Multi-byte transfers walk consecutive registers, as the chip's
// auto-increment does.
type fakeI2C struct {
	registers [TimerMode + 1]byte
	log       []transaction
	err       error // when set, returned from every transfer
}

func (f *fakeI2C) ReadRegister(addr uint8, r uint8, buf []byte) error {
	if f.err != nil {
		return f.err
	}
	f.log = append(f.log, transaction{register: r, read: len(buf)})
	copy(buf, f.registers[r:])
	return nil
}

func (f *fakeI2C) WriteRegister(addr uint8, r uint8, buf []byte) error {
	if f.err != nil {
		return f.err
	}
	f.log = append(f.log, transaction{register: r, write: append([]byte(nil), buf...)})
	copy(f.registers[r:], buf)
	return nil
}

func (f *fakeI2C) Tx(addr uint16, w, r []byte) error {
	if f.err != nil {
		return f.err
	}
	if len(w) == 0 {
		return errors.New("fake: raw read without register address")
	}
	if len(w) > 1 {
		return f.WriteRegister(uint8(addr), w[0], w[1:])
	}
	return f.ReadRegister(uint8(addr), w[0], r)
}
