package pulse

import "testing"

type led struct {
	on       bool
	switches int
}

func (l *led) Set(on bool) {
	if on != l.on {
		l.switches++
	}
	l.on = on
}

// countdown is a tick driven one-shot that calls expire when it runs out.
type countdown struct {
	enabled   bool
	elapsed   int
	duration  int
	restarts  int
	expire    func()
	stopCalls int
}

func (c *countdown) Restart() { c.enabled = true; c.elapsed = 0; c.restarts++ }
func (c *countdown) Stop()    { c.enabled = false; c.stopCalls++ }

func (c *countdown) tick() {
	if !c.enabled {
		return
	}
	c.elapsed++
	if c.elapsed == c.duration {
		c.expire()
	}
}

func newController() (*Controller, *led, *countdown) {
	l := &led{}
	cd := &countdown{duration: Ticks}
	c := New(l, cd)
	cd.expire = c.Expire
	return c, l, cd
}

func TestTriggerExpire(t *testing.T) {
	c, l, cd := newController()

	if c.State() != Idle || l.on {
		t.Fatalf("initial state %v, led %v, want idle, off", c.State(), l.on)
	}

	c.Trigger()
	if c.State() != Active || !l.on || !cd.enabled {
		t.Fatalf("after Trigger state %v, led %v, countdown %v, want active, on, enabled", c.State(), l.on, cd.enabled)
	}

	c.Expire()
	if c.State() != Idle || l.on || cd.enabled {
		t.Errorf("after Expire state %v, led %v, countdown %v, want idle, off, disabled", c.State(), l.on, cd.enabled)
	}
}

func TestPulseDuration(t *testing.T) {
	tests := []struct {
		name     string
		triggers []int // ticks at which a revolution arrives
	}{
		{"single", []int{0}},
		{"retrigger", []int{0, 10, 50}},
		{"retrigger at the last tick", []int{0, Ticks - 1}},
		{"burst", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, test := range tests {
		c, l, cd := newController()
		last := test.triggers[len(test.triggers)-1]
		off := -1

		next := 0
		for tick := 0; tick < last+3*Ticks; tick++ {
			if next < len(test.triggers) && test.triggers[next] == tick {
				c.Trigger()
				next++
			}
			cd.tick()
			if off < 0 && !l.on {
				off = tick + 1
			}
		}

		if got := off - last; got != Ticks {
			t.Errorf("%s: LED on for %d ticks after the last revolution, want %d", test.name, got, Ticks)
		}
		if l.switches != 2 {
			t.Errorf("%s: LED switched %d times, want 2", test.name, l.switches)
		}
		if c.Pulses() != 1 {
			t.Errorf("%s: Pulses() = %d, want 1", test.name, c.Pulses())
		}
		if cd.restarts != len(test.triggers) {
			t.Errorf("%s: countdown restarted %d times, want %d", test.name, cd.restarts, len(test.triggers))
		}
	}
}

func TestSeparatePulses(t *testing.T) {
	c, _, cd := newController()

	for i := 0; i < 3; i++ {
		c.Trigger()
		for j := 0; j < Ticks; j++ {
			cd.tick()
		}
	}

	if c.Pulses() != 3 {
		t.Errorf("Pulses() = %d, want 3", c.Pulses())
	}
	if cd.stopCalls != 3 {
		t.Errorf("countdown stopped %d times, want 3", cd.stopCalls)
	}
}

func TestStateString(t *testing.T) {
	if Idle.String() != "idle" || Active.String() != "active" || State(7).String() != "invalid" {
		t.Error("unexpected state names")
	}
}
