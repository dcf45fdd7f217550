// Package timer provides one-shot cancellable timers on virtual time.
//
// A Queue never fires on its own. The owner advances it to the current time
// from its event loop, so callbacks run serially on that loop and tests can
// step time explicitly.
package timer

import "time"

// Handle identifies a registered timer. The zero Handle is never issued.
type Handle uint64

// Timer registers callbacks to fire once after a delay.
type Timer interface {
	Register(delay time.Duration, fn func()) Handle
	// Cancel stops h from firing. Cancelling a fired or unknown handle is a
	// no-op.
	Cancel(h Handle)
}

type entry struct {
	handle   Handle
	deadline time.Time
	fn       func()
}

type Queue struct {
	now     time.Time
	last    Handle
	pending map[Handle]*entry
}

func NewQueue(start time.Time) *Queue {
	return &Queue{
		now:     start,
		pending: make(map[Handle]*entry),
	}
}

// Now is the time the queue was last advanced to.
func (q *Queue) Now() time.Time {
	return q.now
}

func (q *Queue) Register(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	q.last++
	q.pending[q.last] = &entry{
		handle:   q.last,
		deadline: q.now.Add(delay),
		fn:       fn,
	}
	return q.last
}

func (q *Queue) Cancel(h Handle) {
	delete(q.pending, h)
}

// Pending reports whether h is registered and has not fired.
func (q *Queue) Pending(h Handle) bool {
	_, ok := q.pending[h]
	return ok
}

// Len is the number of timers waiting to fire.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Next returns the earliest deadline, if any timer is pending.
func (q *Queue) Next() (time.Time, bool) {
	e := q.earliest()
	if e == nil {
		return time.Time{}, false
	}
	return e.deadline, true
}

// Advance moves the queue to now, firing every timer due by then in deadline
// order (registration order on ties). While a callback runs, Now reports its
// deadline, so timers it registers are relative to when it was due. It
// returns the number of callbacks fired.
func (q *Queue) Advance(now time.Time) int {
	return q.advance(now, true)
}

// AdvanceBefore is Advance for timers due strictly before now. Timers due at
// exactly now stay pending, so an event the caller delivers at now is seen
// first and registers relative to now.
func (q *Queue) AdvanceBefore(now time.Time) int {
	return q.advance(now, false)
}

func (q *Queue) advance(now time.Time, inclusive bool) int {
	fired := 0
	for {
		e := q.earliest()
		if e == nil || e.deadline.After(now) || (!inclusive && e.deadline.Equal(now)) {
			break
		}
		delete(q.pending, e.handle)
		if e.deadline.After(q.now) {
			q.now = e.deadline
		}
		e.fn()
		fired++
	}
	if now.After(q.now) {
		q.now = now
	}
	return fired
}

func (q *Queue) earliest() *entry {
	var first *entry
	for _, e := range q.pending {
		if first == nil || e.deadline.Before(first.deadline) ||
			(e.deadline.Equal(first.deadline) && e.handle < first.handle) {
			first = e
		}
	}
	return first
}
