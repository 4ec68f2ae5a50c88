package searchbox

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once the delay has
// passed without another trigger. At most one call is pending at a time.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Trigger schedules fn, replacing any pending call
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	seq := d.seq
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.seq != seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Cancel drops the pending call, reporting whether there was one
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	pending := d.timer != nil
	d.stopLocked()
	return pending
}

// Pending reports whether a call is waiting for the delay to pass
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

func (d *Debouncer) stopLocked() {
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
