package capture

import (
	"sync"
	"testing"
	"time"

	"tacho/pkg/timer"
)

// fakeCounter is a counter the test sets directly.
type fakeCounter struct {
	value  uint16
	resets int
}

func (c *fakeCounter) Value() uint16 { return c.value }
func (c *fakeCounter) Reset()        { c.value = 0; c.resets++ }

func TestEdgePairing(t *testing.T) {
	c := &fakeCounter{}
	mb := NewMailbox(&sync.Mutex{})
	cp := New(c, mb)

	for i := 1; i <= 10; i++ {
		c.value = uint16(100 * i)
		got := cp.Edge()
		want := i%2 == 0
		if got != want {
			t.Errorf("edge %d: Edge() = %v, want %v", i, got, want)
		}

		m, ok := mb.Take()
		if ok != want {
			t.Fatalf("edge %d: measurement ready = %v, want %v", i, ok, want)
		}
		if ok && m.Ticks() != uint32(100*i) {
			t.Errorf("edge %d: Ticks() = %d, want %d", i, m.Ticks(), 100*i)
		}
	}

	if c.resets != 5 {
		t.Errorf("counter resets = %d, want 5", c.resets)
	}
}

func TestOverflowTally(t *testing.T) {
	tests := []struct {
		overflows int
		counter   uint16
	}{
		{0, 1},
		{0, 0xFFFF},
		{1, 0},
		{3, 1200},
		{250, 42},
		{0xFFFF, 0xFFFF},
	}

	for _, test := range tests {
		c := &fakeCounter{}
		mb := NewMailbox(&sync.Mutex{})
		cp := New(c, mb)

		cp.Edge()
		for i := 0; i < test.overflows; i++ {
			cp.Overflow()
		}
		c.value = test.counter
		cp.Edge()

		m, ok := mb.Take()
		if !ok {
			t.Fatalf("overflows %d, counter %d: no measurement", test.overflows, test.counter)
		}
		want := uint32(test.overflows)*timer.Range + uint32(test.counter)
		if m.Ticks() != want {
			t.Errorf("overflows %d, counter %d: Ticks() = %d, want %d", test.overflows, test.counter, m.Ticks(), want)
		}
	}
}

func TestOverflowTallyWraps(t *testing.T) {
	c := &fakeCounter{value: 7}
	mb := NewMailbox(&sync.Mutex{})
	cp := New(c, mb)

	cp.Edge()
	for i := 0; i < 1<<16+2; i++ {
		cp.Overflow()
	}
	cp.Edge()

	m, _ := mb.Take()
	if want := uint32(2)<<16 | 7; m.Ticks() != want {
		t.Errorf("Ticks() = %d, want %d", m.Ticks(), want)
	}
}

// TestTimebase drives the capture from the emulated counter the way the
// interrupt vectors do: overflows are delivered before the edge.
func TestTimebase(t *testing.T) {
	tests := []struct {
		m uint64
		c uint64
	}{
		{0, 12},
		{1, 8},
		{3, 0},
		{3, 1200},
		{91, 65528},
	}

	for _, test := range tests {
		counter := timer.NewCounter(0)
		mb := NewMailbox(&sync.Mutex{})
		cp := New(counter, mb)

		edge := func(at time.Duration) bool {
			for n := counter.Advance(at); n > 0; n-- {
				cp.Overflow()
			}
			return cp.Edge()
		}

		// first revolution from power-on, discarded
		edge(time.Millisecond)
		edge(2 * time.Millisecond)
		if _, ok := mb.Take(); !ok {
			t.Fatal("no measurement for the first revolution")
		}

		ticks := test.m*timer.Range + test.c
		// ticks are multiples of 12, 1 µs each
		end := 2*time.Millisecond + time.Duration(ticks/12)*time.Microsecond
		edge(2*time.Millisecond + time.Duration(ticks/24)*time.Microsecond)
		edge(end)

		m, ok := mb.Take()
		if !ok {
			t.Fatalf("M=%d C=%d: no measurement", test.m, test.c)
		}
		if uint64(m.Ticks()) != ticks {
			t.Errorf("M=%d C=%d: Ticks() = %d, want %d", test.m, test.c, m.Ticks(), ticks)
		}
	}
}

func TestZeroPeriodIsOneTick(t *testing.T) {
	c := &fakeCounter{}
	mb := NewMailbox(&sync.Mutex{})
	cp := New(c, mb)

	cp.Edge()
	cp.Edge()
	m, _ := mb.Take()
	if m.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", m.Ticks())
	}
}

func TestMailboxHandshake(t *testing.T) {
	mb := NewMailbox(&sync.Mutex{})

	if _, ok := mb.Take(); ok {
		t.Fatal("empty mailbox returned a measurement")
	}

	if !mb.Post(Measurement{Counter: 1}) {
		t.Fatal("Post to an empty mailbox failed")
	}
	if mb.Post(Measurement{Counter: 2}) {
		t.Fatal("Post overwrote an unread measurement")
	}
	if mb.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", mb.Dropped())
	}

	m, ok := mb.Take()
	if !ok || m.Counter != 1 {
		t.Errorf("Take() = %v, %v, want counter 1, true", m, ok)
	}
	if _, ok := mb.Take(); ok {
		t.Error("measurement consumed twice")
	}

	if !mb.Post(Measurement{Counter: 3}) {
		t.Error("Post after Take failed")
	}
}

func TestMailboxConcurrent(t *testing.T) {
	mask := &sync.Mutex{}
	mb := NewMailbox(mask)

	const n = 10000
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 1; i <= n; i++ {
			// a handler runs masked
			mask.Lock()
			mb.Post(Measurement{Overflows: uint16(i), Counter: uint16(i)})
			mask.Unlock()
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
		}
		if m, ok := mb.Take(); ok && m.Overflows != m.Counter {
			t.Fatalf("torn measurement %+v", m)
		}
	}
}
