package backlight

import (
	"time"

	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/timer"
)

// Light is the display backlight.
type Light interface {
	Enable(on bool)
}

// Controller keeps the backlight on for a fixed duration after each wake.
// At most one off timer is pending; it is cancelled before being replaced.
type Controller struct {
	log   *slog.Logger
	light Light
	timer timer.Timer

	duration time.Duration
	offTimer timer.Handle
	on       bool
}

func New(log *slog.Logger, light Light, t timer.Timer) *Controller {
	return &Controller{
		log:   log,
		light: light,
		timer: t,
	}
}

// SetDuration changes how long On keeps the light lit. Zero disables it.
func (c *Controller) SetDuration(d time.Duration) {
	c.duration = d
}

func (c *Controller) IsOn() bool {
	return c.on
}

// On lights the display and (re)starts the off timer.
func (c *Controller) On() {
	if c.duration <= 0 {
		return
	}
	c.cancelTimer()
	c.light.Enable(true)
	c.on = true
	c.offTimer = c.timer.Register(c.duration, c.expire)
	c.log.Debug("backlight on", slog.Duration("duration", c.duration))
}

// Off turns the light off immediately, cancelling any pending off timer.
func (c *Controller) Off() {
	c.cancelTimer()
	c.light.Enable(false)
	if c.on {
		c.log.Debug("backlight off")
	}
	c.on = false
}

// Cancel drops the pending off timer without touching the light.
func (c *Controller) Cancel() {
	c.cancelTimer()
}

func (c *Controller) expire() {
	c.offTimer = 0
	c.light.Enable(false)
	c.on = false
	c.log.Debug("backlight timed out")
}

func (c *Controller) cancelTimer() {
	if c.offTimer != 0 {
		c.timer.Cancel(c.offTimer)
		c.offTimer = 0
	}
}
