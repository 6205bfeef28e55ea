package rpm

// Window is a ring buffer of the last WindowSize samples with a running sum.
//
// Until the window is full the mean is taken over the samples written so
// far, so the first readings after power-on are not pulled towards zero by
// empty slots.
type Window struct {
	slots  [WindowSize]uint32
	cursor int
	count  int
	sum    uint64
}

// Insert writes v at the cursor, evicting the oldest sample once the window
// is full, and advances the cursor.
func (w *Window) Insert(v uint32) {
	w.sum -= uint64(w.slots[w.cursor])
	w.slots[w.cursor] = v
	w.sum += uint64(v)

	w.cursor = (w.cursor + 1) % WindowSize
	if w.count < WindowSize {
		w.count++
	}
}

// Mean returns the truncated mean of the samples in the window, 0 if empty.
func (w *Window) Mean() uint32 {
	if w.count == 0 {
		return 0
	}

	return uint32(w.sum / uint64(w.count))
}

// Cursor returns the slot the next sample is written to.
func (w *Window) Cursor() int {
	return w.cursor
}

// Len returns the number of samples in the window.
func (w *Window) Len() int {
	return w.count
}
