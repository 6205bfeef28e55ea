// Package pulse flashes the indicator LED once per revolution.
//
// The controller is a one-shot: a revolution lights the LED and (re)starts a
// countdown, the countdown expiry turns it off again. A revolution arriving
// while the LED is lit restarts the countdown, so at high speeds the pulses
// merge into one continuous glow. The controller is owned by interrupt
// context; Trigger and Expire are interrupt handlers.
package pulse

import "github.com/womat/debug"

// Ticks is the LED on time in countdown ticks (about 125 µs at 750 kHz).
const Ticks = 94

const (
	// Idle is the state with the LED off and the countdown disabled.
	Idle State = iota
	// Active is the state with the LED lit and the countdown running.
	Active
)

// State is the state of the pulse controller.
type State int

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "invalid"
	}
}

// Output is the indicator LED.
type Output interface {
	Set(on bool)
}

// Countdown is the one-shot timer timing the LED on time.
type Countdown interface {
	// Restart resets the countdown to zero and enables its interrupt.
	Restart()
	// Stop disables the countdown interrupt.
	Stop()
}

// Controller is the LED pulse state machine.
type Controller struct {
	led       Output
	countdown Countdown
	state     State
	// pulses counts the pulses started from Idle.
	pulses uint32
}

// New returns an idle controller.
func New(led Output, countdown Countdown) *Controller {
	return &Controller{
		led:       led,
		countdown: countdown,
		state:     Idle,
	}
}

// Trigger is called on every completed revolution.
func (c *Controller) Trigger() {
	if c.state == Idle {
		c.pulses++
	}

	c.led.Set(true)
	c.countdown.Restart()
	c.state = Active
}

// Expire is the countdown interrupt handler.
func (c *Controller) Expire() {
	if c.state != Active {
		debug.TraceLog.Print("pulse countdown expired while idle")
	}

	c.led.Set(false)
	c.countdown.Stop()
	c.state = Idle
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Pulses returns the number of separate pulses since start.
func (c *Controller) Pulses() uint32 {
	return c.pulses
}
