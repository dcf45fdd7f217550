package host

import (
	"time"

	"github.com/aldld/numberhands/clock"
)

// Clock is a clock.TimeSource that ticks on minute or second boundaries of
// the loop's time.
type Clock struct {
	now  time.Time
	g    clock.Granularity
	fn   func(clock.ClockTime)
	next time.Time
}

func (c *Clock) Subscribe(g clock.Granularity, fn func(clock.ClockTime)) {
	c.g = g
	c.fn = fn
	c.next = clock.NextBoundary(c.now, g)
}

func (c *Clock) Unsubscribe() {
	c.fn = nil
}

func (c *Clock) Now() clock.ClockTime {
	return clock.FromTime(c.now)
}

// Granularity reports the current subscription, if there is one.
func (c *Clock) Granularity() (clock.Granularity, bool) {
	return c.g, c.fn != nil
}

func (c *Clock) due() (time.Time, bool) {
	return c.next, c.fn != nil
}

// advance delivers at most one tick. Boundaries missed while the loop was
// asleep collapse into it.
func (c *Clock) advance(now time.Time) {
	c.now = now
	if c.fn == nil || now.Before(c.next) {
		return
	}
	c.next = clock.NextBoundary(now, c.g)
	c.fn(clock.FromTime(now))
}
