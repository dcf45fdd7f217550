// Package wake recognises a wrist raise from accelerometer samples.
package wake

import (
	"time"

	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/timer"
)

const (
	// SampleRate is the accelerometer rate the detector is tuned for.
	SampleRate = 10 // Hz

	// Threshold is the vertical acceleration, in milli-g, below which the
	// arm counts as raised.
	Threshold = -450

	// Debounce is how long the arm must stay raised before it counts.
	Debounce = 500 * time.Millisecond
)

// Sample is one vertical-axis acceleration reading in milli-g.
type Sample int

// MotionSource delivers accelerometer samples. Subscribe replaces any previous
// subscription.
type MotionSource interface {
	Subscribe(rateHz int, fn func(Sample))
	Unsubscribe()
}

type State int

const (
	Down State = iota
	Up
)

func (s State) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}

// Detector is a two-state debounce: Down until a raised sample has been
// followed by Debounce of no lowered sample, then Up until the next lowered
// sample.
type Detector struct {
	log   *slog.Logger
	timer timer.Timer

	onRaise func()
	onLower func()

	state   State
	pending timer.Handle
}

// New returns a detector that calls onRaise on each confirmed raise and
// onLower when a raised or pending arm drops again.
func New(log *slog.Logger, t timer.Timer, onRaise, onLower func()) *Detector {
	return &Detector{
		log:     log,
		timer:   t,
		onRaise: onRaise,
		onLower: onLower,
	}
}

func (d *Detector) State() State {
	return d.state
}

// Pending reports whether a raise is waiting out the debounce.
func (d *Detector) Pending() bool {
	return d.pending != 0
}

// Sample feeds one reading. A reading exactly at Threshold changes nothing.
func (d *Detector) Sample(s Sample) {
	switch {
	case s < Threshold:
		if d.state == Down && d.pending == 0 {
			d.pending = d.timer.Register(Debounce, d.confirm)
		}

	case s > Threshold:
		wasActive := d.state == Up || d.pending != 0
		d.Cancel()
		d.state = Down
		if wasActive {
			d.log.Debug("arm lowered")
			if d.onLower != nil {
				d.onLower()
			}
		}
	}
}

// Cancel drops a pending debounce without changing state.
func (d *Detector) Cancel() {
	if d.pending != 0 {
		d.timer.Cancel(d.pending)
		d.pending = 0
	}
}

func (d *Detector) confirm() {
	d.pending = 0
	d.state = Up
	d.log.Debug("arm raised")
	if d.onRaise != nil {
		d.onRaise()
	}
}
