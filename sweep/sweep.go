// Package sweep animates the second hand on a face that only ticks once a
// minute.
//
// A sweep eases the hand from its 12 o'clock rest to the true second, lets it
// run linearly for the reveal window, then eases it on to the next 12
// o'clock:
//
//	Idle ──Begin──► EasingIn ──► Holding ──► EasingOut ──End──► Idle
//
// The Animator owns the state only. Timing comes from an anim.Driver fed the
// phases returned by Begin, whose progress callbacks are passed to Progress.
package sweep

import (
	"fmt"
	"time"

	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/angle"
	"github.com/aldld/numberhands/anim"
)

// EaseDuration is the length of the easing phases on either side of the
// reveal window.
const EaseDuration = 1000 * time.Millisecond

type Phase int

const (
	Idle Phase = iota
	EasingIn
	Holding
	EasingOut
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case EasingIn:
		return "easing_in"
	case Holding:
		return "holding"
	case EasingOut:
		return "easing_out"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

type State struct {
	Phase    Phase
	Start    angle.Angle // true second at trigger time
	End      angle.Angle // Start plus the reveal window
	Current  angle.Angle
	Fraction float64 // progress through Phase
}

func (s State) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("phase", s.Phase.String()),
		slog.Float64("start_deg", s.Start.Degrees()),
		slog.Float64("end_deg", s.End.Degrees()),
		slog.Float64("current_deg", s.Current.Degrees()),
		slog.Float64("fraction", s.Fraction),
	)
}

type Animator struct {
	state State
}

func New() *Animator {
	return &Animator{}
}

// Active reports whether a sweep is in flight.
func (a *Animator) Active() bool {
	return a.state.Phase != Idle
}

func (a *Animator) State() State {
	return a.state
}

// Angle is the second hand's current angle, wrapped into one turn.
func (a *Animator) Angle() angle.Angle {
	return a.state.Current.Normalize()
}

// Begin starts a sweep for the hand currently on second, and returns the
// phases to schedule. It returns false, leaving the running sweep untouched,
// if one is already active.
func (a *Animator) Begin(second int, reveal time.Duration) ([]anim.Phase, bool) {
	if a.Active() {
		return nil, false
	}

	a.state = State{
		Phase: EasingIn,
		Start: angle.Second(second),
		End:   angle.Seconds(second + int(reveal/time.Second)),
	}
	return Phases(reveal), true
}

// Phases is the animation sequence of a sweep with the given reveal window.
func Phases(reveal time.Duration) []anim.Phase {
	return []anim.Phase{
		{ID: int(EasingIn), Duration: EaseDuration, Curve: anim.EaseIn},
		{ID: int(Holding), Duration: reveal, Curve: anim.Linear},
		{ID: int(EasingOut), Duration: EaseDuration, Curve: anim.EaseIn},
	}
}

// Duration is the full length of a sweep with the given reveal window.
func Duration(reveal time.Duration) time.Duration {
	return EaseDuration + reveal + EaseDuration
}

// Progress moves the hand to fraction of phase p. Progress for an earlier
// phase than the current one, or while idle, is ignored. It reports whether
// the state changed.
func (a *Animator) Progress(p Phase, fraction float64) bool {
	if !a.Active() || p < a.state.Phase || p > EasingOut {
		return false
	}
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	a.state.Phase = p
	a.state.Fraction = fraction
	switch p {
	case EasingIn:
		a.state.Current = angle.Lerp(0, a.state.Start, fraction)
	case Holding:
		a.state.Current = angle.Lerp(a.state.Start, a.state.End, fraction)
	case EasingOut:
		a.state.Current = angle.Lerp(a.state.End, a.state.End.CeilTurn(), fraction)
	}
	return true
}

// End returns the animator to Idle with the hand parked at 12 o'clock,
// whether the sweep finished or was cut short.
func (a *Animator) End() {
	a.state = State{}
}
