// Package host runs a watchface on a single goroutine against the wall clock,
// standing in for the platform's event loop.
package host

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/anim"
	"github.com/aldld/numberhands/face"
	"github.com/aldld/numberhands/settings"
	"github.com/aldld/numberhands/timer"
)

// FrameInterval is how often animation frames are stepped while a sequence
// is running.
const FrameInterval = 33 * time.Millisecond

type Loop struct {
	log *slog.Logger

	Clock  *Clock
	Motion *Motion
	Timers *timer.Queue
	Driver *anim.Stepper
}

func New(log *slog.Logger, start time.Time, raise RaiseSchedule) *Loop {
	return &Loop{
		log:    log,
		Clock:  &Clock{now: start},
		Motion: &Motion{schedule: raise, start: start, now: start},
		Timers: timer.NewQueue(start),
		Driver: anim.NewStepper(),
	}
}

// Deps wires the loop's services into a face.
func (l *Loop) Deps(light *LogLight, r face.Renderer) face.Deps {
	return face.Deps{
		Clock:    l.Clock,
		Motion:   l.Motion,
		Timer:    l.Timers,
		Driver:   l.Driver,
		Light:    light,
		Renderer: r,
	}
}

// Next is when something will next be due, never later than after.
func (l *Loop) Next(now time.Time, after time.Duration) time.Time {
	next := now.Add(after)
	earlier := func(t time.Time, ok bool) {
		if ok && t.Before(next) {
			next = t
		}
	}
	earlier(l.Clock.due())
	earlier(l.Motion.due())
	earlier(l.Timers.Next())
	if l.Driver.Active() {
		earlier(now.Add(FrameInterval), true)
	}
	return next
}

// Step delivers everything due by now in time order. Each motion sample is
// delivered once the timers due before it have fired, and ahead of timers
// due at the same instant, so a debounce it starts runs from the sample's
// time and a sample landing on a deadline is seen before it fires.
func (l *Loop) Step(now time.Time) {
	l.Motion.advance(now, func(at time.Time) {
		l.Clock.advance(at)
		l.Timers.AdvanceBefore(at)
	})
	l.Clock.advance(now)
	l.Timers.Advance(now)
	l.Driver.Step(now)
}

// Run drives f until ctx is done. On SIGHUP, reload is called and its
// settings are dispatched to the face.
func (l *Loop) Run(ctx context.Context, f *face.Face, reload func() (settings.Settings, error)) error {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	f.Start()
	f.Refresh()

	for {
		now := time.Now()
		wait := time.NewTimer(l.Next(now, time.Minute).Sub(now))

		select {
		case <-ctx.Done():
			wait.Stop()
			l.log.Info("stopping host loop")
			return nil

		case <-hup:
			wait.Stop()
			s, err := reload()
			if err != nil {
				l.log.Error("failed to reload config", slog.Any("error", err))
				break
			}
			l.log.Info("config reloaded")
			f.Dispatch(face.SettingsChanged{Settings: s})

		case <-wait.C:
		}

		l.Step(time.Now())
		f.Refresh()
	}
}

// LogLight is a backlight that only logs.
type LogLight struct {
	log *slog.Logger
	on  bool
}

func NewLogLight(log *slog.Logger) *LogLight {
	return &LogLight{log: log}
}

func (l *LogLight) Enable(on bool) {
	if l.on == on {
		return
	}
	l.on = on
	l.log.Info("backlight", slog.Bool("on", on))
}

func (l *LogLight) On() bool {
	return l.on
}
