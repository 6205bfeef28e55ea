// Package timer emulates the two hardware timers the tachometer is built on:
// a free running 16-bit counter that raises an overflow interrupt on every wrap
// and a one-shot countdown used to time the LED pulse.
//
// Both are driven from the monotonic clock; the counter never reads the clock
// itself, the caller hands it the timestamp of the event being serviced so
// that edge timestamps taken by the kernel translate into exact tick counts.
package timer

import "time"

const (
	// TickRate is the counter frequency in Hz (Fosc/4 of a 48 MHz core, no prescaler).
	TickRate = 12_000_000
	// Range is the number of distinct counter values; the counter wraps to 0 after Range-1.
	Range = 1 << 16
	// CountdownRate is the countdown frequency in Hz (TickRate with a 1:16 prescaler).
	CountdownRate = TickRate / 16

	// OverflowPeriod is the time between two counter overflows.
	OverflowPeriod = time.Duration(Range) * time.Second / TickRate
)

// Ticks converts a duration to counter ticks.
// The conversion is split in whole seconds and the remainder so that long
// idle periods (a stopped shaft) do not overflow the multiplication.
func Ticks(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}

	s := uint64(d / time.Second)
	r := uint64(d % time.Second)
	return s*TickRate + r*TickRate/uint64(time.Second)
}

// Duration converts countdown ticks to a duration.
func Duration(countdownTicks uint32) time.Duration {
	return time.Duration(countdownTicks) * time.Second / CountdownRate
}

// Counter is a free running 16-bit up counter clocked at TickRate.
// Only the interrupt context touches a Counter.
type Counter struct {
	// base is the time of the last reset.
	base time.Duration
	// now is the time of the last advance.
	now time.Duration
	// wraps are the overflows reported since base.
	wraps uint64
}

// NewCounter returns a counter that was reset at the given time.
func NewCounter(at time.Duration) *Counter {
	return &Counter{base: at, now: at}
}

// Advance runs the counter up to now and returns how many times it wrapped
// since the previous advance. Timestamps that are not newer than the last one
// leave the counter untouched.
func (c *Counter) Advance(now time.Duration) int {
	if now <= c.now {
		return 0
	}

	c.now = now
	total := Ticks(c.now-c.base) / Range
	n := total - c.wraps
	c.wraps = total
	return int(n)
}

// Value returns the current 16-bit counter value.
func (c *Counter) Value() uint16 {
	return uint16(Ticks(c.now - c.base))
}

// Reset sets the counter back to zero at the time of the last advance.
func (c *Counter) Reset() {
	c.base = c.now
	c.wraps = 0
}
