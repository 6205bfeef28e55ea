package timer

import (
	"sync/atomic"
	"time"
)

// Countdown is a one-shot timer. Restart arms it from zero, when the configured
// number of countdown ticks have elapsed it sets its expired flag and calls
// fire, which is expected to raise the countdown interrupt.
//
// Restart, Stop and Acknowledge belong to the interrupt context.
type Countdown struct {
	duration time.Duration
	fire     func()
	// run numbers the restarts; a timer from an earlier run may still fire
	// after a restart and must not count as expiry of the current one.
	run atomic.Uint64
	// expired is the interrupt flag of the countdown, the number of the run
	// that expired or 0.
	expired atomic.Uint64
	timer   *time.Timer
}

// NewCountdown returns a stopped countdown of ticks countdown ticks.
func NewCountdown(ticks uint32, fire func()) *Countdown {
	return &Countdown{duration: Duration(ticks), fire: fire}
}

// Restart sets the countdown back to zero and starts it.
func (c *Countdown) Restart() {
	c.Stop()

	run := c.run.Add(1)
	c.timer = time.AfterFunc(c.duration, func() {
		c.expired.Store(run)
		c.fire()
	})
}

// Stop halts the countdown without firing and clears a pending expiry.
func (c *Countdown) Stop() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.run.Add(1)
	c.expired.Store(0)
}

// Acknowledge clears the expired flag and reports whether the current run
// expired.
func (c *Countdown) Acknowledge() bool {
	run := c.run.Load()
	return c.expired.CompareAndSwap(run, 0) && run != 0
}

// Duration returns the time between Restart and expiry.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}
