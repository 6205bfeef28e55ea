//go:build !linux

package raspberry

import (
	"time"

	"tacho/pkg/lcd"
	"tacho/pkg/port"
)

var boot = time.Now()

// Now returns the time since the program started.
func Now() time.Duration {
	return time.Since(boot)
}

// Chip is not available on this platform.
type Chip struct{}

// Open always fails, use the emulator.
func Open(string) (*Chip, error) {
	return nil, ErrUnsupported
}

// Close releases the Chip.
func (c *Chip) Close() error {
	return nil
}

// Line is not available on this platform.
type Line struct{}

// NewSensor always fails.
func (c *Chip) NewSensor(int, string, string, func(port.Event)) (*Line, error) {
	return nil, ErrUnsupported
}

// Close releases the line.
func (l *Line) Close() error {
	return nil
}

// LED is not available on this platform.
type LED struct{}

// NewLED always fails.
func (c *Chip) NewLED(int) (*LED, error) {
	return nil, ErrUnsupported
}

// Set does nothing.
func (l *LED) Set(bool) {}

// Close releases the line.
func (l *LED) Close() error {
	return nil
}

// DisplayPins are not available on this platform.
type DisplayPins struct{}

// OpenDisplayPins always fails.
func OpenDisplayPins(int, int, int) (*DisplayPins, error) {
	return nil, ErrUnsupported
}

// Select does nothing.
func (p *DisplayPins) Select() {}

// Deselect does nothing.
func (p *DisplayPins) Deselect() {}

// Latch does nothing.
func (p *DisplayPins) Latch(lcd.Mode) {}

// Close does nothing.
func (p *DisplayPins) Close() error {
	return nil
}
