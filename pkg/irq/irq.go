// Package irq is the interrupt context of the tachometer.
//
// Every interrupt source owns one vector in a dispatch table. Sources are
// raised from any goroutine (line event handlers, timers) and are serviced one
// at a time, in the order they were raised, by the goroutine running Run.
// Handlers never nest and never run concurrently with each other.
//
// The Controller is also the interrupt mask: holding its lock (sync.Locker)
// keeps the dispatcher from entering a handler, which is how the main loop
// builds critical sections around state it shares with handlers.
package irq

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/womat/debug"
)

// Sources is the size of the dispatch table.
const Sources = 8

// Source identifies an interrupt source, the index of its vector.
type Source uint8

// Handler services one interrupt. at is the time the source was raised.
type Handler func(at time.Duration)

type request struct {
	src Source
	at  time.Duration
}

// Controller holds the dispatch table and the pending interrupt queue.
type Controller struct {
	// mask is held while a handler runs and while the main loop is in a critical section.
	mask sync.Mutex
	// raise serializes producers so that a group of sources raised together stays together.
	raise   sync.Mutex
	vectors [Sources]Handler
	enabled [Sources]atomic.Bool
	queue   chan request
	// lost counts raise requests discarded because the queue was full.
	lost atomic.Uint32
}

// New returns a controller that buffers up to depth pending interrupts.
func New(depth int) *Controller {
	if depth < 1 {
		depth = 1
	}

	return &Controller{queue: make(chan request, depth)}
}

// Register installs h as the vector of src and enables the source.
// Vectors must be registered before Run is started.
func (c *Controller) Register(src Source, h Handler) {
	c.vectors[src] = h
	c.enabled[src].Store(true)
}

// Enable enables servicing of src. It is safe to call from a handler.
func (c *Controller) Enable(src Source) {
	c.enabled[src].Store(true)
}

// Disable disables servicing of src; interrupts raised while a source is
// disabled are discarded. It is safe to call from a handler.
func (c *Controller) Disable(src Source) {
	c.enabled[src].Store(false)
}

// Enabled reports whether src is serviced.
func (c *Controller) Enabled(src Source) bool {
	return c.enabled[src].Load()
}

// Raise queues the given sources, all stamped with at, without blocking.
// Either all of them are queued or, if the queue cannot take them, none is
// and Raise returns false.
func (c *Controller) Raise(at time.Duration, srcs ...Source) bool {
	c.raise.Lock()
	defer c.raise.Unlock()

	if cap(c.queue)-len(c.queue) < len(srcs) {
		c.lost.Add(1)
		return false
	}

	for _, src := range srcs {
		c.queue <- request{src: src, at: at}
	}
	return true
}

// Lost returns the number of Raise calls that were discarded.
func (c *Controller) Lost() uint32 {
	return c.lost.Load()
}

// Lock masks interrupts: no handler starts until Unlock.
func (c *Controller) Lock() {
	c.mask.Lock()
}

// Unlock unmasks interrupts.
func (c *Controller) Unlock() {
	c.mask.Unlock()
}

// Run services pending interrupts until ctx is done.
func (c *Controller) Run(ctx context.Context) {
	debug.DebugLog.Print("interrupt dispatcher started")
	defer debug.DebugLog.Print("interrupt dispatcher stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case r := <-c.queue:
			c.Service(r.src, r.at)
		}
	}
}

// Service runs the vector of src with interrupts masked.
// A source without a vector or a disabled source is ignored.
func (c *Controller) Service(src Source, at time.Duration) {
	h := c.vectors[src]
	if h == nil || !c.enabled[src].Load() {
		return
	}

	c.mask.Lock()
	defer c.mask.Unlock()
	h(at)
}
