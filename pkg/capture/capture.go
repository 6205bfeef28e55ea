// Package capture measures the shaft period.
//
// Capture runs in interrupt context. The overflow handler counts counter wraps,
// the edge handler pairs sensor edges (two edges per revolution) and on every
// second edge snapshots the overflow tally and the counter into a Measurement,
// resets both and posts the measurement to the Mailbox the main loop polls.
//
// The overflow tally is 16 bits wide. A revolution that takes longer than
// 65536 counter ranges wraps the tally and is reported as a much shorter
// period; at 12 MHz that bounds the measurable speed to about 0.17 RPM.
package capture

import "github.com/womat/debug"

// Counter is the free running counter the period is measured with.
type Counter interface {
	// Value returns the current counter value.
	Value() uint16
	// Reset sets the counter to zero.
	Reset()
}

// Measurement is the period of one revolution.
type Measurement struct {
	// Overflows is the number of counter wraps during the revolution.
	Overflows uint16
	// Counter is the counter value at the end of the revolution.
	Counter uint16
}

// Ticks returns the period in counter ticks.
func (m Measurement) Ticks() uint32 {
	return uint32(m.Overflows)<<16 | uint32(m.Counter)
}

// Capture is the edge capture state machine.
type Capture struct {
	counter Counter
	mailbox *Mailbox
	// overflows is the overflow tally since the last capture.
	overflows uint16
	// odd is set between the first and the second edge of a pair.
	odd bool
}

// New returns an edge capture that measures with counter and posts to mailbox.
func New(counter Counter, mailbox *Mailbox) *Capture {
	return &Capture{
		counter: counter,
		mailbox: mailbox,
	}
}

// Overflow is the counter overflow handler.
func (c *Capture) Overflow() {
	c.overflows++
}

// Edge is the sensor edge handler. It returns true if the edge completed a
// revolution; only then a measurement was taken.
func (c *Capture) Edge() bool {
	c.odd = !c.odd
	if c.odd {
		return false
	}

	m := Measurement{Overflows: c.overflows, Counter: c.counter.Value()}
	c.counter.Reset()
	c.overflows = 0

	// the counter keeps running while the capture executes, a pair of edges
	// never spans less than one tick.
	if m.Ticks() == 0 {
		m.Counter = 1
	}

	if !c.mailbox.Post(m) {
		debug.TraceLog.Printf("measurement %d ticks dropped, mailbox is full", m.Ticks())
	}
	return true
}
