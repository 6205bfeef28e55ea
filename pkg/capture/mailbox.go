package capture

import "sync"

// Mailbox is a single slot hand over of a Measurement from interrupt context
// to the main loop. The ready flag is the only synchronization signal: the
// slot is read only after ready was seen set and it is written only while
// ready is clear.
type Mailbox struct {
	// mask masks interrupts around the consumer's read.
	mask    sync.Locker
	slot    Measurement
	ready   bool
	dropped uint32
}

// NewMailbox returns an empty mailbox guarded by the interrupt mask.
func NewMailbox(mask sync.Locker) *Mailbox {
	return &Mailbox{mask: mask}
}

// Post stores m and sets the ready flag. It must be called from interrupt
// context, where interrupts are already masked. If the previous measurement
// has not been taken yet, m is dropped and Post returns false.
func (b *Mailbox) Post(m Measurement) bool {
	if b.ready {
		b.dropped++
		return false
	}

	b.slot = m
	b.ready = true
	return true
}

// Take returns the pending measurement and clears the ready flag. It returns
// false if no measurement is pending. Take is called from the main loop.
func (b *Mailbox) Take() (Measurement, bool) {
	b.mask.Lock()
	defer b.mask.Unlock()

	if !b.ready {
		return Measurement{}, false
	}

	m := b.slot
	b.ready = false
	return m, true
}

// Dropped returns the number of measurements that found the mailbox full.
func (b *Mailbox) Dropped() uint32 {
	b.mask.Lock()
	defer b.mask.Unlock()
	return b.dropped
}
