// Package rpm converts period measurements into a smoothed shaft speed.
package rpm

import (
	"tacho/pkg/capture"
	"tacho/pkg/timer"

	"github.com/womat/debug"
)

const (
	// WindowSize is the number of samples the displayed speed is averaged over.
	WindowSize = 32
	// TicksPerMinute is the counter ticks in one minute. A measurement spans one
	// full revolution, so revolutions per minute = TicksPerMinute / period.
	TicksPerMinute = timer.TickRate * 60
)

// Source hands over period measurements, see capture.Mailbox.
type Source interface {
	// Take returns the pending measurement, if any, without blocking.
	Take() (capture.Measurement, bool)
}

// Sample converts a period of ticks into revolutions per minute, truncated.
// A zero period cannot be produced by the edge capture; it is a programming
// error and panics.
func Sample(ticksPerMinute, ticks uint32) uint32 {
	if ticks == 0 {
		panic("rpm: zero period")
	}

	return ticksPerMinute / ticks
}

// Estimator keeps the rolling average of the shaft speed.
type Estimator struct {
	src            Source
	ticksPerMinute uint32
	window         Window
	average        uint32
}

// New returns an estimator reading from src. ticksPerMinute is the counter rate
// in ticks per minute, normally TicksPerMinute.
func New(src Source, ticksPerMinute uint32) *Estimator {
	return &Estimator{
		src:            src,
		ticksPerMinute: ticksPerMinute,
	}
}

// Poll consumes at most one pending measurement and returns the average
// speed. updated is false if no measurement was pending, the average is then
// the previous one.
func (e *Estimator) Poll() (average uint32, updated bool) {
	m, ok := e.src.Take()
	if !ok {
		return e.average, false
	}

	s := Sample(e.ticksPerMinute, m.Ticks())
	e.window.Insert(s)
	e.average = e.window.Mean()

	debug.TraceLog.Printf("period %d ticks, sample %d rpm, average %d rpm", m.Ticks(), s, e.average)
	return e.average, true
}

// Average returns the last computed average.
func (e *Estimator) Average() uint32 {
	return e.average
}

// Cursor returns the slot the next sample is written to.
func (e *Estimator) Cursor() int {
	return e.window.Cursor()
}

// Samples returns the number of samples in the window.
func (e *Estimator) Samples() int {
	return e.window.Len()
}
