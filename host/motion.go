package host

import (
	"time"

	"github.com/aldld/numberhands/wake"
)

const (
	raisedSample  wake.Sample = -900
	loweredSample wake.Sample = -100
)

// RaiseSchedule simulates a wearer who lifts their wrist every Every and
// holds it up for Hold. A zero Every never raises.
type RaiseSchedule struct {
	Every time.Duration
	Hold  time.Duration
}

// Sample is the Y-axis reading at elapsed since the loop started.
func (r RaiseSchedule) Sample(elapsed time.Duration) wake.Sample {
	if r.Every <= 0 || elapsed < r.Every {
		return loweredSample
	}
	if (elapsed-r.Every)%r.Every < r.Hold {
		return raisedSample
	}
	return loweredSample
}

// Motion is a wake.MotionSource reading from a RaiseSchedule.
type Motion struct {
	schedule RaiseSchedule
	start    time.Time
	now      time.Time

	interval time.Duration
	fn       func(wake.Sample)
	next     time.Time
}

func (m *Motion) Subscribe(rateHz int, fn func(wake.Sample)) {
	if rateHz <= 0 {
		rateHz = wake.SampleRate
	}
	m.interval = time.Second / time.Duration(rateHz)
	m.fn = fn
	m.next = m.now.Add(m.interval)
}

func (m *Motion) Unsubscribe() {
	m.fn = nil
}

func (m *Motion) due() (time.Time, bool) {
	return m.next, m.fn != nil
}

// advance delivers every sample due by now. before is called with each
// sample's time ahead of its delivery.
func (m *Motion) advance(now time.Time, before func(at time.Time)) {
	m.now = now
	if m.fn != nil && now.Sub(m.next) > time.Second {
		m.next = now // Don't replay a long stall.
	}
	for m.fn != nil && !m.next.After(now) {
		at := m.next
		m.next = m.next.Add(m.interval)
		if before != nil {
			before(at)
		}
		m.now = at
		m.fn(m.schedule.Sample(at.Sub(m.start)))
	}
	m.now = now
}
