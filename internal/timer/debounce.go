// Package timer provides the cancellable-timer abstraction behind debounced
// search input. Rescheduling cancels the previous token deterministically.
package timer

import (
	"sync"
	"time"
)

// CancelToken cancels a scheduled call.
type CancelToken interface {
	// Cancel stops the pending call if it has not fired. Idempotent.
	Cancel()
}

type token struct {
	timer *time.Timer
	once  sync.Once
}

func (t *token) Cancel() {
	t.once.Do(func() {
		t.timer.Stop()
	})
}

// Debouncer coalesces rapid calls into one. Each Schedule cancels the
// previously pending call, so only the last call within the delay fires.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	pending CancelToken
}

// NewDebouncer creates a debouncer with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule arranges for fn to run after the debounce delay, cancelling any
// previously scheduled call. The returned token cancels this call.
func (d *Debouncer) Schedule(fn func()) CancelToken {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Cancel()
	}
	t := &token{timer: time.AfterFunc(d.delay, fn)}
	d.pending = t
	return t
}

// Cancel stops any pending call. Used when the component relying on the
// debouncer is disposed.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
}
