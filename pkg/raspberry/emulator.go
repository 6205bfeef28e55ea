package raspberry

import (
	"strings"
	"sync"
	"time"

	"tacho/pkg/lcd"
	"tacho/pkg/port"

	"github.com/womat/debug"
	"tinygo.org/x/drivers"
)

// EdgesPerRevolution is the number of sensor edges the emulator produces for
// one revolution.
const EdgesPerRevolution = 2

// Emulator produces sensor edges for a shaft spinning at a constant speed.
type Emulator struct {
	period  time.Duration
	handler func(port.Event)
	quit    chan struct{}
	done    chan struct{}
}

// NewEmulator starts producing edges for rpm revolutions per minute.
func NewEmulator(rpm int, handler func(port.Event)) (*Emulator, error) {
	if rpm <= 0 || handler == nil {
		return nil, ErrInvalidParam
	}

	e := &Emulator{
		period:  time.Minute / time.Duration(rpm) / EdgesPerRevolution,
		handler: handler,
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	debug.InfoLog.Printf("emulating %d rpm, one edge every %v", rpm, e.period)
	go e.run()
	return e, nil
}

// Period returns the time between two emulated edges.
func (e *Emulator) Period() time.Duration {
	return e.period
}

func (e *Emulator) run() {
	defer close(e.done)

	t := time.NewTicker(e.period)
	defer t.Stop()

	edge := port.RisingEdge
	for {
		select {
		case <-e.quit:
			return
		case <-t.C:
			e.handler(port.Event{Timestamp: Now(), Type: edge})
			if edge == port.RisingEdge {
				edge = port.FallingEdge
			} else {
				edge = port.RisingEdge
			}
		}
	}
}

// Close stops the emulator and waits until the last edge has been handled.
func (e *Emulator) Close() error {
	close(e.quit)
	<-e.done
	return nil
}

// LogLED is an LED that writes its transitions to the trace log.
type LogLED struct {
	mu sync.Mutex
	on bool
}

// Set switches the LED.
func (l *LogLED) Set(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if on != l.on {
		debug.TraceLog.Printf("led on: %v", on)
	}
	l.on = on
}

// On reports the LED state.
func (l *LogLED) On() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.on
}

// Panel is a software display controller. It decodes the page and column
// address commands, stores data bytes in its RAM and ignores everything else.
type Panel struct {
	mu       sync.Mutex
	ram      [lcd.Pages][lcd.Columns]byte
	page     uint8
	column   uint8
	mode     lcd.Mode
	selected bool
}

var _ drivers.SPI = (*Panel)(nil)
var _ lcd.Pins = (*Panel)(nil)

// Select asserts chip select.
func (p *Panel) Select() {
	p.mu.Lock()
	p.selected = true
	p.mu.Unlock()
}

// Deselect releases chip select.
func (p *Panel) Deselect() {
	p.mu.Lock()
	p.selected = false
	p.mu.Unlock()
}

// Latch sets the command/data bit for the next byte.
func (p *Panel) Latch(m lcd.Mode) {
	p.mu.Lock()
	p.mode = m
	p.mu.Unlock()
}

// Transfer receives one byte. Nothing is read back.
func (p *Panel) Transfer(b byte) (byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.selected {
		return 0, nil
	}

	if p.mode == lcd.Data {
		if int(p.page) < lcd.Pages && int(p.column) < lcd.Columns {
			p.ram[p.page][p.column] = b
		}
		p.column++
		return 0, nil
	}

	switch {
	case b&0xF0 == lcd.CmdPage:
		p.page = b & 0x0F
	case b&0xF8 == lcd.CmdColumnHigh:
		p.column = p.column&0x0F | (b&0x07)<<4
	case b&0xF0 == lcd.CmdColumnLow:
		p.column = p.column&0x70 | b&0x0F
	}
	return 0, nil
}

// Tx transfers every byte of w.
func (p *Panel) Tx(w, r []byte) error {
	for i, b := range w {
		v, _ := p.Transfer(b)
		if i < len(r) {
			r[i] = v
		}
	}
	return nil
}

// Byte returns the RAM content at page and column.
func (p *Panel) Byte(page, column int) byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ram[page][column]
}

// Render draws pages [from, to) of the visible area as text, one line per
// pixel row, '#' for a set pixel.
func (p *Panel) Render(from, to int) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	for page := from; page < to && page < lcd.Pages; page++ {
		for bit := 0; bit < 8; bit++ {
			for col := 0; col < lcd.Width; col++ {
				if p.ram[page][col]&(1<<bit) != 0 {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
