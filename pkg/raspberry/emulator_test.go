package raspberry

import (
	"strings"
	"sync"
	"testing"
	"time"

	"tacho/pkg/lcd"
	"tacho/pkg/port"
)

func TestEmulatorPeriod(t *testing.T) {
	e, err := NewEmulator(6000, func(port.Event) {})
	if err != nil {
		t.Fatal(err)
	}
	defer e.Close()

	if want := 5 * time.Millisecond; e.Period() != want {
		t.Errorf("Period() = %v, want %v", e.Period(), want)
	}
}

func TestEmulatorInvalid(t *testing.T) {
	if _, err := NewEmulator(0, func(port.Event) {}); err != ErrInvalidParam {
		t.Errorf("rpm 0: err = %v, want %v", err, ErrInvalidParam)
	}
	if _, err := NewEmulator(100, nil); err != ErrInvalidParam {
		t.Errorf("nil handler: err = %v, want %v", err, ErrInvalidParam)
	}
}

func TestEmulatorEdges(t *testing.T) {
	var mu sync.Mutex
	var events []port.Event

	e, err := NewEmulator(60000, func(ev port.Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(50 * time.Millisecond)
	_ = e.Close()

	mu.Lock()
	defer mu.Unlock()

	if len(events) < 4 {
		t.Fatalf("got %d edges in 50ms at 0.5ms per edge", len(events))
	}
	for i := 1; i < len(events); i++ {
		if events[i].Type == events[i-1].Type {
			t.Errorf("edge %d: %v follows %v", i, events[i].Type, events[i-1].Type)
		}
		if events[i].Timestamp < events[i-1].Timestamp {
			t.Errorf("edge %d: timestamp went backwards", i)
		}
	}
}

func TestPanelAddressing(t *testing.T) {
	p := &Panel{}
	d := lcd.New(p, p)

	if err := d.SetCursor(37, 2); err != nil {
		t.Fatal(err)
	}
	for _, b := range []byte{0xAA, 0x55} {
		if err := d.Data(b); err != nil {
			t.Fatal(err)
		}
	}

	if got := p.Byte(2, 37); got != 0xAA {
		t.Errorf("page 2 column 37 = %#02x, want 0xaa", got)
	}
	if got := p.Byte(2, 38); got != 0x55 {
		t.Errorf("page 2 column 38 = %#02x, want 0x55", got)
	}
}

func TestPanelIgnoresDeselected(t *testing.T) {
	p := &Panel{}
	p.Latch(lcd.Data)
	_, _ = p.Transfer(0xFF)

	if got := p.Byte(0, 0); got != 0 {
		t.Errorf("deselected panel stored %#02x", got)
	}
}

func TestPanelRender(t *testing.T) {
	p := &Panel{}
	d := lcd.New(p, p)

	if err := d.SetCursor(0, 0); err != nil {
		t.Fatal(err)
	}
	if err := d.Data(0x81); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSuffix(p.Render(0, 1), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("rendered %d rows, want 8", len(lines))
	}
	for i, l := range lines {
		if len(l) != lcd.Width {
			t.Fatalf("row %d is %d wide", i, len(l))
		}
		want := byte('.')
		if i == 0 || i == 7 {
			want = '#'
		}
		if l[0] != want {
			t.Errorf("row %d column 0 = %c, want %c", i, l[0], want)
		}
	}
}

func TestLogLED(t *testing.T) {
	l := &LogLED{}
	l.Set(true)
	if !l.On() {
		t.Error("LED off after Set(true)")
	}
	l.Set(false)
	if l.On() {
		t.Error("LED on after Set(false)")
	}
}
