//go:build linux

package raspberry

import (
	"time"

	"tacho/pkg/lcd"
	"tacho/pkg/port"

	"github.com/warthog618/gpio"
	"github.com/warthog618/gpiod"
	"github.com/womat/debug"
	"golang.org/x/sys/unix"
)

// Now returns the time since boot on the clock gpiod stamps line events with.
func Now() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		debug.ErrorLog.Printf("clock_gettime: %v", err)
	}
	return time.Duration(ts.Nano())
}

// Chip represents a single GPIO chip that controls a set of lines.
type Chip struct {
	gpiodChip *gpiod.Chip
}

// Open opens a GPIO character device, e.g. gpiochip0.
func Open(name string) (*Chip, error) {
	c, err := gpiod.NewChip(name)
	if err != nil {
		return nil, err
	}
	return &Chip{gpiodChip: c}, nil
}

// Close releases the Chip.
//
// It does not release any lines which may be requested - they must be closed
// independently.
func (c *Chip) Close() error {
	return c.gpiodChip.Close()
}

// Line represents the requested sensor line.
type Line struct {
	gpiodLine *gpiod.Line
}

// NewSensor requests the sensor line and watches it for edges.
// The handler is called from the gpiod event goroutine with the kernel
// timestamp of every edge; it must not block.
func (c *Chip) NewSensor(offset int, edge, bias string, handler func(port.Event)) (*Line, error) {
	opts := []gpiod.LineReqOption{
		gpiod.AsInput,
		gpiod.WithEventHandler(func(evt gpiod.LineEvent) {
			e := port.Event{Timestamp: evt.Timestamp, Type: port.FallingEdge}
			if evt.Type == gpiod.LineEventRisingEdge {
				e.Type = port.RisingEdge
			}
			handler(e)
		}),
	}

	switch edge {
	case EdgeRising:
		opts = append(opts, gpiod.WithRisingEdge)
	case EdgeFalling:
		opts = append(opts, gpiod.WithFallingEdge)
	case EdgeBoth:
		opts = append(opts, gpiod.WithBothEdges)
	default:
		return nil, ErrInvalidParam
	}

	switch bias {
	case BiasPullUp:
		opts = append(opts, gpiod.WithPullUp)
	case BiasPullDown:
		opts = append(opts, gpiod.WithPullDown)
	case BiasNone:
	default:
		return nil, ErrInvalidParam
	}

	l, err := c.gpiodChip.RequestLine(offset, opts...)
	if err != nil {
		return nil, err
	}

	debug.InfoLog.Printf("watching sensor line %d for %s edges", offset, edge)
	return &Line{gpiodLine: l}, nil
}

// Close releases the line.
//
// Note that this includes waiting for any running event handler to return.
// As a consequence the Close must not be called from the context of the event
// handler - the Close should be called from a different goroutine.
func (l *Line) Close() error {
	return l.gpiodLine.Close()
}

// LED is an output line driving the indicator LED.
type LED struct {
	gpiodLine *gpiod.Line
}

// NewLED requests offset as an output, initially low.
func (c *Chip) NewLED(offset int) (*LED, error) {
	l, err := c.gpiodChip.RequestLine(offset, gpiod.AsOutput(0))
	if err != nil {
		return nil, err
	}
	return &LED{gpiodLine: l}, nil
}

// Set drives the LED.
func (l *LED) Set(on bool) {
	v := 0
	if on {
		v = 1
	}
	if err := l.gpiodLine.SetValue(v); err != nil {
		debug.ErrorLog.Printf("led: %v", err)
	}
}

// Close releases the line.
func (l *LED) Close() error {
	return l.gpiodLine.Close()
}

// DisplayPins drives the display's chip select and clocks in the
// command/data bit on the SPI data and clock pins. The pins are switched to
// plain outputs for that one bit and handed back to the SPI function (Alt0)
// for the byte.
type DisplayPins struct {
	cs  *gpio.Pin
	sdo *gpio.Pin
	sck *gpio.Pin
}

// OpenDisplayPins maps the GPIO memory and claims the pins (BCM numbers).
func OpenDisplayPins(cs, sdo, sck int) (*DisplayPins, error) {
	if err := gpio.Open(); err != nil {
		return nil, err
	}

	p := &DisplayPins{
		cs:  gpio.NewPin(cs),
		sdo: gpio.NewPin(sdo),
		sck: gpio.NewPin(sck),
	}
	p.cs.High()
	p.cs.Output()
	return p, nil
}

// Select asserts chip select.
func (p *DisplayPins) Select() {
	p.cs.Low()
}

// Deselect releases chip select.
func (p *DisplayPins) Deselect() {
	p.cs.High()
}

// Latch clocks m into the display.
func (p *DisplayPins) Latch(m lcd.Mode) {
	p.sck.Low()
	p.sck.Output()
	p.sdo.Output()

	if m == lcd.Data {
		p.sdo.High()
	} else {
		p.sdo.Low()
	}
	p.sck.High()
	p.sck.Low()

	p.sdo.SetMode(gpio.Alt0)
	p.sck.SetMode(gpio.Alt0)
}

// Close releases chip select and unmaps the GPIO memory.
func (p *DisplayPins) Close() error {
	p.cs.High()
	return gpio.Close()
}
