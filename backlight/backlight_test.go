package backlight

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/timer"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeLight struct {
	calls []bool
}

func (l *fakeLight) Enable(on bool) {
	l.calls = append(l.calls, on)
}

func (l *fakeLight) lit() bool {
	return len(l.calls) > 0 && l.calls[len(l.calls)-1]
}

func newController() (*Controller, *fakeLight, *timer.Queue) {
	light := &fakeLight{}
	q := timer.NewQueue(epoch)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, light, q), light, q
}

func TestOnTimesOut(t *testing.T) {
	c, light, q := newController()
	c.SetDuration(3 * time.Second)

	c.On()
	assert.True(t, light.lit())
	assert.True(t, c.IsOn())

	q.Advance(epoch.Add(2999 * time.Millisecond))
	assert.True(t, light.lit())

	q.Advance(epoch.Add(3 * time.Second))
	assert.False(t, light.lit())
	assert.False(t, c.IsOn())
	assert.Equal(t, 0, q.Len())
}

func TestOnRestartsTimer(t *testing.T) {
	c, light, q := newController()
	c.SetDuration(3 * time.Second)

	c.On()
	q.Advance(epoch.Add(2 * time.Second))
	c.On()
	assert.Equal(t, 1, q.Len(), "previous off timer is cancelled before the new one")

	q.Advance(epoch.Add(4 * time.Second))
	assert.True(t, light.lit())
	q.Advance(epoch.Add(5 * time.Second))
	assert.False(t, light.lit())
}

func TestOffCancelsTimer(t *testing.T) {
	c, light, q := newController()
	c.SetDuration(5 * time.Second)

	c.On()
	c.Off()
	assert.False(t, light.lit())
	assert.Equal(t, 0, q.Len())

	n := len(light.calls)
	q.Advance(epoch.Add(time.Minute))
	assert.Len(t, light.calls, n, "no stale off callback")
}

func TestDisabled(t *testing.T) {
	c, light, q := newController()
	c.SetDuration(0)

	c.On()
	assert.Empty(t, light.calls)
	assert.Equal(t, 0, q.Len())
}

func TestCancel(t *testing.T) {
	c, light, q := newController()
	c.SetDuration(3 * time.Second)
	c.On()

	c.Cancel()
	assert.Equal(t, 0, q.Len())
	assert.Equal(t, []bool{true}, light.calls)
}
