// Package lcd drives a 96×68 pixel, 9 page monochrome LCD (STE2007 class
// controller) over a 3-wire 9-bit SPI link, and renders digits on it.
//
// Every byte is framed by chip select. The ninth (first) bit selects command or
// data and is clocked in by hand before the byte goes out on the SPI bus.
package lcd

import (
	"errors"
	"fmt"
	"time"

	"github.com/womat/debug"
	"tinygo.org/x/drivers"
)

const (
	// Width is the number of visible columns.
	Width = 96
	// Columns is the size of the column address space.
	Columns = 132
	// Pages is the number of 8 pixel high pages.
	Pages = 9

	// ResetDelay is the wait after the software reset command.
	ResetDelay = 10 * time.Millisecond
)

// Controller commands.
const (
	cmdReset          = 0xE2
	cmdChargePump     = 0x3D
	cmdChargePumpX4   = 0x01
	cmdAllPointsOff   = 0xA4
	cmdPowerControl   = 0x2F // booster, regulator and follower on
	cmdDisplayOn      = 0xAF
	cmdNormal         = 0xA6
	cmdRowsReversed   = 0xC8
	cmdColumnsReverse = 0xA1
)

// Address commands, the operand is or'ed into the low bits.
const (
	CmdPage       = 0xB0
	CmdColumnHigh = 0x10
	CmdColumnLow  = 0x00
)

// initSequence is sent by Configure, ResetDelay is waited after the first byte.
var initSequence = []byte{
	cmdReset,
	cmdChargePump,
	cmdChargePumpX4,
	cmdAllPointsOff,
	cmdPowerControl,
	cmdDisplayOn,
	cmdNormal,
	cmdRowsReversed,
	cmdColumnsReverse,
}

// ErrNoGlyph is returned for digits outside 0–9.
var ErrNoGlyph = errors.New("no glyph for digit")

// Mode is the value of the command/data bit.
type Mode uint8

const (
	// Command marks a controller command byte.
	Command Mode = 0
	// Data marks a display RAM byte.
	Data Mode = 1
)

// Pins drives the control lines around a bus transfer.
type Pins interface {
	// Select asserts chip select (low).
	Select()
	// Deselect releases chip select.
	Deselect()
	// Latch presents m on the data line and clocks it in with one clock pulse,
	// leaving the bus ready for the 8 bit transfer.
	Latch(m Mode)
}

// Device is the display.
type Device struct {
	bus   drivers.SPI
	pins  Pins
	sleep func(time.Duration)
}

// New returns a display on bus, framed by pins.
func New(bus drivers.SPI, pins Pins) *Device {
	return &Device{
		bus:   bus,
		pins:  pins,
		sleep: time.Sleep,
	}
}

// Configure sends the initialization sequence.
func (d *Device) Configure() error {
	for i, c := range initSequence {
		if err := d.Command(c); err != nil {
			return fmt.Errorf("init command %#02x: %w", c, err)
		}
		if i == 0 {
			d.sleep(ResetDelay)
		}
	}

	debug.DebugLog.Print("display configured")
	return nil
}

// Command sends a command byte.
func (d *Device) Command(c byte) error {
	return d.send(Command, c)
}

// Data sends a display RAM byte; the column address advances by one.
func (d *Device) Data(b byte) error {
	return d.send(Data, b)
}

func (d *Device) send(m Mode, b byte) error {
	d.pins.Select()
	defer d.pins.Deselect()

	d.pins.Latch(m)
	_, err := d.bus.Transfer(b)
	return err
}

// SetCursor addresses column col of page page.
func (d *Device) SetCursor(col, page uint8) error {
	for _, c := range [...]byte{
		CmdPage | page&0x0F,
		CmdColumnHigh | (col>>4)&0x07,
		CmdColumnLow | col&0x0F,
	} {
		if err := d.Command(c); err != nil {
			return err
		}
	}
	return nil
}

// Clear blanks the whole display RAM.
func (d *Device) Clear() error {
	if err := d.SetCursor(0, 0); err != nil {
		return err
	}

	for i := 0; i < Width*Pages; i++ {
		if err := d.Data(0); err != nil {
			return err
		}
	}
	return nil
}

// DrawDigit draws digit at page, col in font f.
func (d *Device) DrawDigit(page, col, digit uint8, f *Font) error {
	g, ok := f.Glyph(digit)
	if !ok {
		return fmt.Errorf("%w %d", ErrNoGlyph, digit)
	}

	for r := uint8(0); r < f.Pages; r++ {
		if err := d.SetCursor(col, page+r); err != nil {
			return err
		}
		for c := uint8(0); c < f.Width; c++ {
			if err := d.Data(g.Column(r, c)); err != nil {
				return err
			}
		}
	}
	return nil
}

// DrawNumber draws the last digits decimal digits of v, most significant
// first, with leading zeros, starting at page, col.
func (d *Device) DrawNumber(page, col uint8, v uint32, digits int, f *Font) error {
	ds := make([]uint8, digits)
	for i := digits - 1; i >= 0; i-- {
		ds[i] = uint8(v % 10)
		v /= 10
	}

	for _, n := range ds {
		if err := d.DrawDigit(page, col, n, f); err != nil {
			return err
		}
		col += f.Width
	}
	return nil
}
