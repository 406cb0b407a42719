package notebook

import (
	"sync"
	"time"
)

// timer is the cancellable handle held between schedule and fire.
type timer interface {
	Stop() bool
}

// timerFunc starts a timer that invokes fn after d. Tests substitute a fake
// so debounce behavior is driven by hand instead of wall-clock sleeps.
type timerFunc func(d time.Duration, fn func()) timer

func afterFunc(d time.Duration, fn func()) timer {
	return time.AfterFunc(d, fn)
}

// debouncer coalesces bursts of mutations into one trailing write: every
// Schedule call restarts the quiet-period timer, so only the final mutation
// in a burst triggers fire.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	after   timerFunc
	pending timer
	fire    func()
}

func newDebouncer(delay time.Duration, after timerFunc, fire func()) *debouncer {
	if after == nil {
		after = afterFunc
	}
	return &debouncer{delay: delay, after: after, fire: fire}
}

// Schedule arms (or re-arms) the trailing timer.
func (d *debouncer) Schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
	}

	// A stopped timer's callback can already be in flight (Stop returned
	// false); it must neither fire nor clear the handle of the timer that
	// replaced it, or a later Stop would cancel nothing.
	var t timer
	t = d.after(d.delay, func() {
		d.mu.Lock()
		stale := d.pending != t
		if !stale {
			d.pending = nil
		}
		d.mu.Unlock()
		if stale {
			return
		}
		d.fire()
	})
	d.pending = t
}

// Stop cancels any pending fire without running it.
func (d *debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.pending != nil {
		d.pending.Stop()
		d.pending = nil
	}
}

