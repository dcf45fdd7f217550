package face

import (
	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/angle"
	"github.com/aldld/numberhands/anim"
	"github.com/aldld/numberhands/backlight"
	"github.com/aldld/numberhands/clock"
	"github.com/aldld/numberhands/render"
	"github.com/aldld/numberhands/settings"
	"github.com/aldld/numberhands/sweep"
	"github.com/aldld/numberhands/theme"
	"github.com/aldld/numberhands/timer"
	"github.com/aldld/numberhands/wake"
)

// Renderer paints a frame. It is called at most once per Refresh.
type Renderer interface {
	Render(f render.Frame)
}

// Deps are the platform services a face runs on. All of their callbacks must
// be delivered serially from one event loop.
type Deps struct {
	Clock    clock.TimeSource
	Motion   wake.MotionSource
	Timer    timer.Timer
	Driver   anim.Driver
	Light    backlight.Light
	Renderer Renderer
}

// FaceState is what the face knows between callbacks.
type FaceState struct {
	Time     clock.ClockTime
	Settings settings.Settings
	Palette  theme.Palette
}

type Face struct {
	log  *slog.Logger
	deps Deps

	state  FaceState
	redraw Scheduler

	sweep       *sweep.Animator
	sweepID     uint64
	sweepHandle anim.Handle

	wake  *wake.Detector
	light *backlight.Controller

	started bool
	closed  bool
}

func New(log *slog.Logger, s settings.Settings, deps Deps) *Face {
	f := &Face{
		log:   log,
		deps:  deps,
		state: FaceState{Settings: s},
		sweep: sweep.New(),
		light: backlight.New(log.With(slog.String("component", "backlight")), deps.Light, deps.Timer),
	}
	f.wake = wake.New(log.With(slog.String("component", "wake")), deps.Timer, f.onRaise, f.onLower)
	return f
}

// Start subscribes to the platform services and paints the current time.
func (f *Face) Start() {
	if f.started || f.closed {
		return
	}
	f.started = true
	f.log.Info("starting watchface")

	f.applySettings(f.state.Settings)
	f.Dispatch(TimeTick{Time: f.deps.Clock.Now()})
}

// Teardown cancels both timers, any running sweep and every subscription.
// Events dispatched afterwards are dropped.
func (f *Face) Teardown() {
	if f.closed {
		return
	}
	f.wake.Cancel()
	f.light.Cancel()
	f.cancelSweep()
	f.deps.Clock.Unsubscribe()
	f.deps.Motion.Unsubscribe()
	f.closed = true
	f.log.Info("watchface torn down")
}

func (f *Face) State() FaceState {
	return f.state
}

func (f *Face) Sweep() sweep.State {
	return f.sweep.State()
}

// Frame describes what the display should show right now.
func (f *Face) Frame() render.Frame {
	st := f.state
	fr := render.Frame{
		Time:        st.Time,
		Hour:        angle.Hour(st.Time.Hour, st.Time.Minute),
		Minute:      angle.Minute(st.Time.Minute, st.Time.Second),
		ShowNumbers: st.Settings.ShowNumbers,
		ShowDate:    st.Settings.ShowDate,
		Palette:     st.Palette,
	}

	switch st.Settings.Seconds.Mode {
	case settings.SecondsAlways:
		fr.ShowSecond = true
		fr.Second = angle.Second(st.Time.Second)
	case settings.SecondsReveal:
		fr.ShowSecond = true
		fr.Second = f.sweep.Angle()
	}
	return fr
}

// Refresh paints once if anything marked the face dirty since the last
// refresh. The host calls it once per display refresh.
func (f *Face) Refresh() bool {
	if f.closed {
		return false
	}
	return f.redraw.Flush(func() {
		f.deps.Renderer.Render(f.Frame())
	})
}

// RevealSeconds starts a second sweep. It only runs in reveal mode and is a
// no-op while a sweep is already in flight.
func (f *Face) RevealSeconds() bool {
	if f.closed {
		return false
	}
	secs := f.state.Settings.Seconds
	if secs.Mode != settings.SecondsReveal {
		return false
	}

	now := f.deps.Clock.Now()
	phases, ok := f.sweep.Begin(now.Second, secs.Reveal)
	if !ok {
		f.log.Debug("sweep already running")
		return false
	}

	f.sweepID++
	id := f.sweepID
	f.sweepHandle = f.deps.Driver.Schedule(anim.Sequence{
		Phases: phases,
		OnProgress: func(phase int, fraction float64) {
			f.Dispatch(AnimationProgress{Sweep: id, Phase: sweep.Phase(phase), Fraction: fraction})
		},
		OnCompleted: func(finished bool) {
			f.Dispatch(AnimationCompleted{Sweep: id, Finished: finished})
		},
	})

	f.log.Info("revealing seconds",
		slog.Int("second", now.Second),
		slog.Duration("reveal", secs.Reveal),
		slog.Any("sweep", f.sweep.State()),
	)
	f.redraw.MarkDirty()
	return true
}

func (f *Face) cancelSweep() {
	if f.sweepHandle == 0 {
		return
	}
	h := f.sweepHandle
	f.sweepHandle = 0
	f.deps.Driver.Unschedule(h)
	f.sweep.End()
	f.redraw.MarkDirty()
}

func (f *Face) onRaise() {
	f.log.Info("wake gesture")
	f.light.On()
	f.RevealSeconds()
}

func (f *Face) onLower() {
	f.light.Off()
}

func (f *Face) applySettings(s settings.Settings) {
	if !s.Theme.Valid() {
		f.log.Warn("unknown theme, using default",
			slog.String("theme", s.Theme.String()),
			slog.String("default", theme.Default.String()),
		)
	}

	f.state.Settings = s
	f.state.Palette = theme.Resolve(s.Theme)

	g := f.redraw.Resubscribe(f.deps.Clock, s.Seconds.Mode, func(t clock.ClockTime) {
		f.Dispatch(TimeTick{Time: t})
	})

	f.light.SetDuration(s.Backlight.Duration())
	if s.Seconds.Mode != settings.SecondsReveal {
		f.cancelSweep()
	}

	f.deps.Motion.Unsubscribe()
	f.deps.Motion.Subscribe(wake.SampleRate, func(sample wake.Sample) {
		f.Dispatch(MotionSample{Sample: sample})
	})

	f.log.Info("settings applied",
		slog.String("seconds", s.Seconds.String()),
		slog.String("granularity", g.String()),
		slog.String("theme", s.Theme.String()),
		slog.String("backlight", s.Backlight.String()),
		slog.Bool("show_numbers", s.ShowNumbers),
		slog.Bool("show_date", s.ShowDate),
	)
	f.redraw.MarkDirty()
}
