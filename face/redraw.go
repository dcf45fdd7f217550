package face

import (
	"github.com/aldld/numberhands/clock"
	"github.com/aldld/numberhands/settings"
)

// Scheduler collapses repaint requests. Any number of MarkDirty calls between
// two refreshes result in a single paint.
type Scheduler struct {
	dirty  bool
	paints int
}

func (s *Scheduler) MarkDirty() {
	s.dirty = true
}

func (s *Scheduler) Dirty() bool {
	return s.dirty
}

// Paints is the number of paints Flush has issued.
func (s *Scheduler) Paints() int {
	return s.paints
}

// Flush calls paint if a repaint is pending and clears the request.
func (s *Scheduler) Flush(paint func()) bool {
	if !s.dirty {
		return false
	}
	s.dirty = false
	s.paints++
	paint()
	return true
}

// GranularityFor is the tick rate the face needs: seconds only when the
// second hand is always live.
func GranularityFor(mode settings.SecondMode) clock.Granularity {
	if mode == settings.SecondsAlways {
		return clock.Second
	}
	return clock.Minute
}

// Resubscribe moves src to the tick rate mode needs.
func (s *Scheduler) Resubscribe(src clock.TimeSource, mode settings.SecondMode, fn func(clock.ClockTime)) clock.Granularity {
	g := GranularityFor(mode)
	src.Unsubscribe()
	src.Subscribe(g, fn)
	return g
}
