package face

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aldld/numberhands/clock"
	"github.com/aldld/numberhands/settings"
)

func TestSchedulerFlush(t *testing.T) {
	var s Scheduler
	painted := 0
	paint := func() { painted++ }

	assert.False(t, s.Flush(paint), "nothing to paint yet")

	s.MarkDirty()
	s.MarkDirty()
	s.MarkDirty()
	assert.True(t, s.Dirty())
	assert.True(t, s.Flush(paint))
	assert.False(t, s.Dirty())
	assert.False(t, s.Flush(paint))

	assert.Equal(t, 1, painted)
	assert.Equal(t, 1, s.Paints())
}

func TestGranularityFor(t *testing.T) {
	assert.Equal(t, clock.Second, GranularityFor(settings.SecondsAlways))
	assert.Equal(t, clock.Minute, GranularityFor(settings.SecondsReveal))
	assert.Equal(t, clock.Minute, GranularityFor(settings.SecondsOff))
}

func TestResubscribe(t *testing.T) {
	var s Scheduler
	src := &fakeClock{}

	g := s.Resubscribe(src, settings.SecondsAlways, func(clock.ClockTime) {})
	assert.Equal(t, clock.Second, g)
	assert.Equal(t, clock.Second, src.granularity)

	g = s.Resubscribe(src, settings.SecondsOff, func(clock.ClockTime) {})
	assert.Equal(t, clock.Minute, g)
	assert.Equal(t, 2, src.subscribes)
	assert.Equal(t, 2, src.unsubscribes)
}
