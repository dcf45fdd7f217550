package clock

import (
	"fmt"
	"time"

	"github.com/ncruces/go-strftime"
	"golang.org/x/exp/slog"
)

// DateFormat is the strftime layout of the date label, e.g. "14 Wed".
const DateFormat = "%d %a"

// Granularity is how often a TimeSource delivers ticks.
type Granularity int

const (
	Minute Granularity = iota
	Second
)

func (g Granularity) Duration() time.Duration {
	if g == Second {
		return time.Second
	}
	return time.Minute
}

func (g Granularity) String() string {
	switch g {
	case Minute:
		return "minute"
	case Second:
		return "second"
	default:
		return fmt.Sprintf("Granularity(%d)", int(g))
	}
}

// ClockTime is a snapshot of the wall clock as the face sees it.
type ClockTime struct {
	Hour   int // 0 to 23
	Minute int
	Second int
	Date   string
}

func FromTime(t time.Time) ClockTime {
	hour, min, sec := t.Clock()
	return ClockTime{
		Hour:   hour,
		Minute: min,
		Second: sec,
		Date:   strftime.Format(DateFormat, t),
	}
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

func (c ClockTime) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("time", c.String()),
		slog.String("date", c.Date),
	)
}

// TimeSource delivers clock ticks. Subscribe replaces any previous
// subscription; Unsubscribe with nothing subscribed is a no-op.
type TimeSource interface {
	Subscribe(g Granularity, fn func(ClockTime))
	Unsubscribe()
	Now() ClockTime
}

// NextBoundary is the first instant after now that falls on a g boundary.
func NextBoundary(now time.Time, g Granularity) time.Time {
	d := g.Duration()
	return now.Truncate(d).Add(d)
}
