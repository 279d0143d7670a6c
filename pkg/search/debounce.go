package search

import (
	"context"
	"sync"
	"time"
)

// Debouncer runs at most one pending call at a time. Scheduling a new call
// cancels the pending one, and a cancelled call never runs, even if its timer
// already fired: the commit is checked under the same lock that Schedule
// takes.
type Debouncer struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Schedule supersedes any pending call and runs fn after delay. A delay of
// zero or less runs fn synchronously before Schedule returns. fn runs while
// the debouncer lock is held and must not call back into the debouncer.
func (d *Debouncer) Schedule(parent context.Context, delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.supersede()
	if delay <= 0 {
		fn()
		return
	}

	ctx, cancel := context.WithCancel(parent)
	gen := d.gen
	d.cancel = cancel

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer cancel()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			d.mu.Lock()
			if d.gen == gen {
				d.cancel = nil
			}
			d.mu.Unlock()
			return
		case <-timer.C:
		}

		d.mu.Lock()
		defer d.mu.Unlock()
		if ctx.Err() != nil || d.gen != gen {
			return
		}
		d.cancel = nil
		fn()
	}()
}

// Cancel drops the pending call, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.supersede()
}

// Pending reports whether a call is waiting on its timer.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancel != nil
}

// Wait blocks until every scheduled goroutine has finished or been cancelled.
func (d *Debouncer) Wait() {
	d.wg.Wait()
}

func (d *Debouncer) supersede() {
	d.gen++
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
}
