// Package anim drives chained, eased animation phases from frame callbacks.
//
// A Sequence is an ordered list of phases. The driver reports progress for
// the running phase as an eased fraction in [0, 1], tagged with the phase ID,
// and reports completion once the last phase ends or the sequence is
// unscheduled. Every phase is reported at fraction 1 before the next one
// starts, even if a frame lands past its end.
package anim

import (
	"time"

	"github.com/fogleman/ease"
)

// Curve maps linear progress to eased progress over [0, 1].
type Curve = ease.Function

var (
	Linear Curve = ease.Linear
	EaseIn Curve = ease.InCubic
)

type Phase struct {
	ID       int
	Duration time.Duration
	Curve    Curve // nil means Linear
}

type Sequence struct {
	Phases      []Phase
	OnProgress  func(id int, fraction float64)
	OnCompleted func(finished bool)
}

// Duration is the total length of all phases.
func (s Sequence) Duration() time.Duration {
	var total time.Duration
	for _, p := range s.Phases {
		total += p.Duration
	}
	return total
}

type Handle uint64

// Driver runs sequences. Unscheduling a finished or unknown handle is a no-op.
type Driver interface {
	Schedule(seq Sequence) Handle
	Unschedule(h Handle)
}

type running struct {
	handle  Handle
	seq     Sequence
	start   time.Time
	started bool

	phase      int // index of the phase in progress
	phaseStart time.Duration
}

// Stepper is a Driver advanced explicitly by its owner, once per display
// frame. A sequence starts at the first Step after it is scheduled.
type Stepper struct {
	last    Handle
	running []*running
}

func NewStepper() *Stepper {
	return &Stepper{}
}

func (s *Stepper) Schedule(seq Sequence) Handle {
	s.last++
	s.running = append(s.running, &running{handle: s.last, seq: seq})
	return s.last
}

func (s *Stepper) Unschedule(h Handle) {
	for i, r := range s.running {
		if r.handle != h {
			continue
		}
		s.running = append(s.running[:i], s.running[i+1:]...)
		if r.seq.OnCompleted != nil {
			r.seq.OnCompleted(false)
		}
		return
	}
}

// Active reports whether any sequence still needs frames.
func (s *Stepper) Active() bool {
	return len(s.running) > 0
}

// Step delivers progress for every running sequence at time now.
func (s *Stepper) Step(now time.Time) {
	// Callbacks may schedule or unschedule; work on a snapshot.
	current := append([]*running(nil), s.running...)
	for _, r := range current {
		if !s.scheduled(r) {
			continue
		}
		if s.step(r, now) && s.scheduled(r) {
			s.remove(r)
			if r.seq.OnCompleted != nil {
				r.seq.OnCompleted(true)
			}
		}
	}
}

func (s *Stepper) scheduled(r *running) bool {
	for _, other := range s.running {
		if other == r {
			return true
		}
	}
	return false
}

func (s *Stepper) remove(r *running) {
	for i, other := range s.running {
		if other == r {
			s.running = append(s.running[:i], s.running[i+1:]...)
			return
		}
	}
}

// step reports progress for r and returns true once its last phase is done.
func (s *Stepper) step(r *running, now time.Time) bool {
	if !r.started {
		r.start = now
		r.started = true
	}
	elapsed := now.Sub(r.start)

	for r.phase < len(r.seq.Phases) {
		p := r.seq.Phases[r.phase]
		end := r.phaseStart + p.Duration
		if elapsed >= end {
			s.report(r, p, 1)
			r.phaseStart = end
			r.phase++
			continue
		}
		s.report(r, p, float64(elapsed-r.phaseStart)/float64(p.Duration))
		return false
	}
	return true
}

func (s *Stepper) report(r *running, p Phase, t float64) {
	if r.seq.OnProgress == nil {
		return
	}
	curve := p.Curve
	if curve == nil {
		curve = Linear
	}
	r.seq.OnProgress(p.ID, clampUnit(curve(clampUnit(t))))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
