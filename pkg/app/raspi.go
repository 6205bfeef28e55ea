package app

import (
	"fmt"
	"io"
	"time"

	"tacho/pkg/app/config"
	"tacho/pkg/lcd"
	"tacho/pkg/port"
	"tacho/pkg/pulse"
	"tacho/pkg/raspberry"

	"github.com/womat/debug"
	"tinygo.org/x/drivers"
)

// board is the hardware the application runs on.
type board struct {
	led  pulse.Output
	bus  drivers.SPI
	pins lcd.Pins
	// panel is set when the display is emulated.
	panel *raspberry.Panel
	// now is the clock the sensor events are stamped with.
	now func() time.Duration
	// watch starts delivering sensor edges to handler.
	watch func(handler func(port.Event)) (io.Closer, error)
	// closers are released in reverse order by Close.
	closers []io.Closer
}

// openBoard opens the Raspberry Pi peripherals, or the emulated ones if a
// simulated speed is configured.
func openBoard(c *config.Config) (*board, error) {
	if c.Simulate > 0 {
		return emulatedBoard(c.Simulate), nil
	}

	b := &board{now: raspberry.Now}
	if err := b.open(c); err != nil {
		_ = b.Close()
		return nil, err
	}
	return b, nil
}

func (b *board) open(c *config.Config) error {
	chip, err := raspberry.Open(c.Gpio.Chip)
	if err != nil {
		return fmt.Errorf("can't open gpio chip %q: %w", c.Gpio.Chip, err)
	}
	b.closers = append(b.closers, chip)

	led, err := chip.NewLED(c.Gpio.LED)
	if err != nil {
		return fmt.Errorf("can't open led line %d: %w", c.Gpio.LED, err)
	}
	b.led = led
	b.closers = append(b.closers, led)

	bus, err := raspberry.OpenSPI(c.Display.SPI, c.Display.Frequency)
	if err != nil {
		return fmt.Errorf("can't open spi port %q: %w", c.Display.SPI, err)
	}
	b.bus = bus
	b.closers = append(b.closers, bus)

	pins, err := raspberry.OpenDisplayPins(c.Display.CS, c.Display.MOSI, c.Display.SCLK)
	if err != nil {
		return fmt.Errorf("can't open display pins: %w", err)
	}
	b.pins = pins
	b.closers = append(b.closers, pins)

	b.watch = func(handler func(port.Event)) (io.Closer, error) {
		return chip.NewSensor(c.Gpio.Sensor, c.Gpio.Edge, c.Gpio.Bias, handler)
	}

	debug.InfoLog.Printf("opened %s, sensor line %d, led line %d", c.Gpio.Chip, c.Gpio.Sensor, c.Gpio.LED)
	return nil
}

// emulatedBoard drives a software panel and LED from an emulated sensor.
func emulatedBoard(rpm int) *board {
	panel := &raspberry.Panel{}
	return &board{
		led:   &raspberry.LogLED{},
		bus:   panel,
		pins:  panel,
		panel: panel,
		now:   raspberry.Now,
		watch: func(handler func(port.Event)) (io.Closer, error) {
			return raspberry.NewEmulator(rpm, handler)
		},
	}
}

// Close releases the peripherals.
func (b *board) Close() error {
	var err error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if e := b.closers[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	b.closers = nil
	return err
}
