package timer

import (
	"testing"
	"time"
)

func TestTicks(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want uint64
	}{
		{0, 0},
		{-time.Second, 0},
		{time.Microsecond, 12},
		{500 * time.Millisecond, 6_000_000},
		{time.Second, TickRate},
		{time.Hour, 3600 * TickRate},
		{1000 * time.Hour, 3_600_000 * TickRate},
	}

	for _, test := range tests {
		if got := Ticks(test.d); got != test.want {
			t.Errorf("Ticks(%v) = %d, want %d", test.d, got, test.want)
		}
	}
}

func TestDuration(t *testing.T) {
	if got, want := Duration(94), 125333*time.Nanosecond; got != want {
		t.Errorf("Duration(94) = %v, want %v", got, want)
	}
	if got := Duration(CountdownRate); got != time.Second {
		t.Errorf("Duration(CountdownRate) = %v, want 1s", got)
	}
}

func TestCounter(t *testing.T) {
	c := NewCounter(time.Second)

	if n := c.Advance(time.Second + 5*time.Microsecond); n != 0 {
		t.Errorf("Advance() = %d, want 0", n)
	}
	if v := c.Value(); v != 60 {
		t.Errorf("Value() = %d, want 60", v)
	}

	// 3 full ranges and 1200 ticks: 197808 ticks, 16484 µs
	if n := c.Advance(time.Second + 16484*time.Microsecond); n != 3 {
		t.Errorf("Advance() = %d, want 3", n)
	}
	if v := c.Value(); v != 1200 {
		t.Errorf("Value() = %d, want 1200", v)
	}

	// stale timestamps leave the counter alone
	if n := c.Advance(time.Second); n != 0 {
		t.Errorf("Advance(stale) = %d, want 0", n)
	}
	if v := c.Value(); v != 1200 {
		t.Errorf("Value() after stale advance = %d, want 1200", v)
	}

	c.Reset()
	if v := c.Value(); v != 0 {
		t.Errorf("Value() after Reset = %d, want 0", v)
	}
	if n := c.Advance(time.Second + 16484*time.Microsecond + OverflowPeriod + time.Microsecond); n != 1 {
		t.Errorf("Advance() after Reset = %d, want 1", n)
	}
}

func TestCounterWrapsIncrementally(t *testing.T) {
	c := NewCounter(0)
	total := 0
	for at := time.Duration(0); at <= time.Second; at += time.Millisecond {
		total += c.Advance(at)
	}

	if want := TickRate / Range; total != want {
		t.Errorf("overflows in 1s = %d, want %d", total, want)
	}
}

func TestCountdown(t *testing.T) {
	fired := make(chan struct{}, 4)
	c := NewCountdown(94, func() { fired <- struct{}{} })

	if c.Acknowledge() {
		t.Fatal("stopped countdown acknowledged")
	}

	c.Restart()
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("countdown did not fire")
	}
	if !c.Acknowledge() {
		t.Error("Acknowledge() = false after expiry")
	}
	if c.Acknowledge() {
		t.Error("expiry acknowledged twice")
	}
}

func TestCountdownRestartClearsExpiry(t *testing.T) {
	fired := make(chan struct{}, 4)
	c := NewCountdown(CountdownRate, func() { fired <- struct{}{} })

	c.Restart()
	c.expired.Store(c.run.Load())
	c.Restart()
	if c.Acknowledge() {
		t.Error("expiry raised before Restart was acknowledged")
	}

	c.Stop()
	select {
	case <-fired:
		t.Error("stopped countdown fired")
	case <-time.After(10 * time.Millisecond):
	}
}

func TestCountdownIgnoresEarlierRun(t *testing.T) {
	fired := make(chan struct{}, 4)
	c := NewCountdown(CountdownRate, func() { fired <- struct{}{} })

	c.Restart()
	earlier := c.run.Load()
	c.Restart()

	// a timer of the earlier run that fired concurrently with the restart
	c.expired.Store(earlier)
	if c.Acknowledge() {
		t.Error("expiry of an earlier run acknowledged")
	}
	c.Stop()
}
