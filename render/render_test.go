package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldld/numberhands/angle"
	"github.com/aldld/numberhands/clock"
	"github.com/aldld/numberhands/theme"
)

func frameAt(hour, minute, second int) Frame {
	return Frame{
		Time:        clock.ClockTime{Hour: hour, Minute: minute, Second: second, Date: "14 Wed"},
		Hour:        angle.Hour(hour, minute),
		Minute:      angle.Minute(minute, second),
		Second:      angle.Second(second),
		ShowSecond:  true,
		ShowNumbers: true,
		ShowDate:    true,
		Palette:     theme.Resolve(theme.Black),
	}
}

func texts(l DisplayList) []Text {
	var out []Text
	for _, op := range l {
		if t, ok := op.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

func TestTicks(t *testing.T) {
	l := Rect.Build(frameAt(10, 8, 0))
	require.GreaterOrEqual(t, len(l), 60)

	wide, narrow := 0, 0
	for _, op := range l[:60] {
		line, ok := op.(Line)
		require.True(t, ok)
		assert.Equal(t, "#FFFFFF", theme.Hex(line.Color), "ticks are legible over black")
		switch line.Width {
		case 3:
			wide++
		case 1:
			narrow++
		}
	}
	assert.Equal(t, 4, wide)
	assert.Equal(t, 56, narrow)

	top := l[0].(Line)
	assert.InDelta(t, 72, top.From.X, 1e-9)
	assert.InDelta(t, 84-72+5, top.From.Y, 1e-9)
	assert.InDelta(t, 84-72+8, top.To.Y, 1e-9)
}

func TestOptionalElements(t *testing.T) {
	f := frameAt(10, 8, 0)
	full := Rect.Build(f).Count()

	f.ShowSecond = false
	f.ShowNumbers = false
	f.ShowDate = false
	bare := Rect.Build(f).Count()

	assert.Equal(t, full["line"]-2, bare["line"], "second hand and its shadow")
	assert.Equal(t, full["circle"]-2, bare["circle"], "second hand hubs")
	assert.Equal(t, 3, full["text"])
	assert.Equal(t, 0, bare["text"])
	assert.Equal(t, 4, bare["path"], "two hands, each with a shadow")
}

func TestLabels(t *testing.T) {
	tests := []struct {
		name          string
		hour, minute  int
		minuteForward bool
		hourForward   bool
		hourLabel     string
		minuteLabel   string
	}{
		{"morning", 3, 10, false, false, "03", "10"},
		{"evening", 21, 45, true, true, "21", "45"},
		{"late morning", 7, 29, false, true, "07", "29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := frameAt(tt.hour, tt.minute, 0)
			ts := texts(Rect.Build(f))
			require.Len(t, ts, 3)

			date, minute, hour := ts[0], ts[1], ts[2]
			assert.Equal(t, "14 Wed", date.Value)
			assert.Equal(t, DateFont, date.Font)
			assert.Equal(t, tt.minuteLabel, minute.Value)
			assert.Equal(t, tt.hourLabel, hour.Value)

			quarter := angle.FullTurn / 4
			if tt.minuteForward {
				assert.Equal(t, f.Minute+quarter, minute.Rotation)
			} else {
				assert.Equal(t, f.Minute-quarter, minute.Rotation)
			}
			if tt.hourForward {
				assert.Equal(t, f.Hour+quarter, hour.Rotation)
			} else {
				assert.Equal(t, f.Hour-quarter, hour.Rotation)
			}
		})
	}
}

func TestMinuteHandRotation(t *testing.T) {
	f := frameAt(0, 15, 0)
	f.ShowDate = false
	l := Rect.Build(f)

	// ticks, then minute shadow hub+path, then minute hub+path
	hand, ok := l[63].(Path)
	require.True(t, ok)
	require.Len(t, hand.Points, 4)

	// The far corner of the hand points at three o'clock.
	assert.InDelta(t, 72+78, hand.Points[1].X, 1e-6)
	assert.InDelta(t, 84-8, hand.Points[1].Y, 1e-6)
}

func TestSecondHandSpansCenter(t *testing.T) {
	f := frameAt(0, 0, 0)
	l := Rect.Build(f)

	var lines []Line
	for _, op := range l[60:] {
		if line, ok := op.(Line); ok {
			lines = append(lines, line)
		}
	}
	require.Len(t, lines, 2)
	hand := lines[1]
	assert.InDelta(t, 72, hand.From.X, 1e-6)
	assert.InDelta(t, 84+12, hand.From.Y, 1e-6, "tail sits below the hub")
	assert.InDelta(t, 84-62, hand.To.Y, 1e-6)
	assert.Equal(t, "#FF0000", theme.Hex(hand.Color))
}

func TestPainter(t *testing.T) {
	var got DisplayList
	p := NewPainter(Rect, func(l DisplayList) { got = l })
	p.Render(frameAt(1, 2, 3))
	assert.NotEmpty(t, got)

	last, ok := got[len(got)-1].(Circle)
	require.True(t, ok)
	assert.Equal(t, 1.0, last.Radius)
}
