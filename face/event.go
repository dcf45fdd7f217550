package face

import (
	"fmt"

	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/clock"
	"github.com/aldld/numberhands/settings"
	"github.com/aldld/numberhands/sweep"
	"github.com/aldld/numberhands/wake"
)

// Event is anything the host delivers to the face. Every platform callback
// is turned into one of these and passed to Dispatch.
type Event interface {
	event()
}

type TimeTick struct {
	Time clock.ClockTime
}

// AnimationProgress reports eased progress through one phase of the sweep
// identified by Sweep.
type AnimationProgress struct {
	Sweep    uint64
	Phase    sweep.Phase
	Fraction float64
}

type AnimationCompleted struct {
	Sweep    uint64
	Finished bool // false if the sweep was cut short
}

type MotionSample struct {
	Sample wake.Sample
}

type SettingsChanged struct {
	Settings settings.Settings
}

func (TimeTick) event()           {}
func (AnimationProgress) event()  {}
func (AnimationCompleted) event() {}
func (MotionSample) event()       {}
func (SettingsChanged) event()    {}

// Dispatch handles a single event. It never blocks.
func (f *Face) Dispatch(ev Event) {
	if f.closed {
		return
	}

	switch e := ev.(type) {
	case TimeTick:
		f.log.Debug("handling event", slog.String("type", "time_tick"), slog.Any("time", e.Time))
		f.state.Time = e.Time
		f.redraw.MarkDirty()

	case AnimationProgress:
		if e.Sweep != f.sweepID {
			return // Left over from a cancelled sweep.
		}
		if f.sweep.Progress(e.Phase, e.Fraction) {
			f.redraw.MarkDirty()
		}

	case AnimationCompleted:
		if e.Sweep != f.sweepID {
			return
		}
		f.sweepHandle = 0
		f.sweep.End()
		f.log.Info("sweep finished", slog.Bool("finished", e.Finished))
		f.redraw.MarkDirty()

	case MotionSample:
		f.wake.Sample(e.Sample)

	case SettingsChanged:
		f.log.Debug("handling event", slog.String("type", "settings_changed"))
		f.applySettings(e.Settings)

	default:
		f.log.Debug("unknown event type", slog.String("type", fmt.Sprintf("%T", ev)))
	}
}
