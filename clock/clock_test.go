package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromTime(t *testing.T) {
	ts := time.Date(2026, time.October, 14, 21, 7, 42, 0, time.UTC)
	ct := FromTime(ts)

	assert.Equal(t, ClockTime{Hour: 21, Minute: 7, Second: 42, Date: "14 Wed"}, ct)
	assert.Equal(t, "21:07:42", ct.String())
}

func TestDatePadsDay(t *testing.T) {
	ts := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "02 Mon", FromTime(ts).Date)
}

func TestNextBoundary(t *testing.T) {
	ts := time.Date(2026, time.October, 14, 21, 7, 42, 500, time.UTC)

	assert.Equal(t, time.Date(2026, time.October, 14, 21, 7, 43, 0, time.UTC), NextBoundary(ts, Second))
	assert.Equal(t, time.Date(2026, time.October, 14, 21, 8, 0, 0, time.UTC), NextBoundary(ts, Minute))

	onBoundary := time.Date(2026, time.October, 14, 21, 8, 0, 0, time.UTC)
	assert.Equal(t, onBoundary.Add(time.Minute), NextBoundary(onBoundary, Minute))
}

func TestGranularity(t *testing.T) {
	assert.Equal(t, time.Second, Second.Duration())
	assert.Equal(t, time.Minute, Minute.Duration())
	assert.Equal(t, "second", Second.String())
}
