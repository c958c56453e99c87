package scheduling

import (
	"context"
	"sync"
	"time"
)

// dateLocks serializes check-then-insert per calendar date. Each date owns a
// one-slot semaphore; attempts on different dates proceed concurrently.
// Acquisition is bounded, so no creation attempt blocks indefinitely. Entries
// are reference counted and evicted once no attempt holds or waits on them,
// keeping the map proportional to in-flight dates rather than history.
type dateLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	sem  chan struct{}
	refs int
}

func newDateLocks() *dateLocks {
	return &dateLocks{entries: make(map[string]*lockEntry)}
}

func (l *dateLocks) retain(date string) *lockEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[date]
	if !ok {
		e = &lockEntry{sem: make(chan struct{}, 1)}
		l.entries[date] = e
	}
	e.refs++
	return e
}

func (l *dateLocks) put(date string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.entries[date]
	if !ok {
		return
	}
	e.refs--
	if e.refs <= 0 {
		delete(l.entries, date)
	}
}

// acquire takes the date's slot or fails with errLockTimeout after timeout.
func (l *dateLocks) acquire(ctx context.Context, date string, timeout time.Duration) error {
	e := l.retain(date)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-timer.C:
		l.put(date)
		return errLockTimeout
	case <-ctx.Done():
		l.put(date)
		return ctx.Err()
	}
}

func (l *dateLocks) release(date string) {
	l.mu.Lock()
	e := l.entries[date]
	l.mu.Unlock()

	<-e.sem
	l.put(date)
}
