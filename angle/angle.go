// Package angle maps clock components to hand rotations.
//
// Angles use a fixed-point turn unit: FullTurn is one clockwise revolution
// starting at 12 o'clock. Values outside [0, FullTurn) are allowed while a hand
// is being animated and are wrapped with Normalize before drawing.
package angle

import "math"

// Angle is a rotation measured in 1/FullTurn of a revolution.
type Angle int32

const (
	FullTurn Angle = 0x10000
	HalfTurn Angle = FullTurn / 2

	// TickCount is the number of marks around the dial.
	TickCount = 60
)

func turnFraction(num, den int) Angle {
	return Angle(int64(num) * int64(FullTurn) / int64(den))
}

// Hour is the hour hand angle. It creeps between hour marks with the minute.
func Hour(hour, minute int) Angle {
	return turnFraction((mod(hour, 12))*60+minute, 12*60)
}

// Minute is the minute hand angle, continuous through the seconds.
func Minute(minute, second int) Angle {
	return turnFraction(minute*60+second, 60*60)
}

// Second is the angle of the second hand resting on the given second.
func Second(second int) Angle {
	return turnFraction(second, 60)
}

// Seconds is the span the second hand covers in n seconds. It is not wrapped.
func Seconds(n int) Angle {
	return turnFraction(n, 60)
}

// FromDegrees converts degrees to an Angle without wrapping.
func FromDegrees(deg float64) Angle {
	return Angle(math.Round(deg * float64(FullTurn) / 360))
}

// Normalize wraps a into [0, FullTurn).
func (a Angle) Normalize() Angle {
	a %= FullTurn
	if a < 0 {
		a += FullTurn
	}
	return a
}

func (a Angle) Degrees() float64 {
	return float64(a) * 360 / float64(FullTurn)
}

func (a Angle) Radians() float64 {
	return float64(a) * 2 * math.Pi / float64(FullTurn)
}

// CeilTurn rounds a up to the next whole turn. Whole turns are returned as is.
func (a Angle) CeilTurn() Angle {
	turns := a / FullTurn
	if a%FullTurn > 0 {
		turns++
	}
	return turns * FullTurn
}

// Lerp interpolates between from and to. f is clamped to [0, 1].
func Lerp(from, to Angle, f float64) Angle {
	if f <= 0 {
		return from
	}
	if f >= 1 {
		return to
	}
	return from + Angle(math.Round(float64(to-from)*f))
}

// LabelRotation orients a number label drawn along a hand so it reads from the
// centre outwards: a quarter turn back on the first half of the dial and a
// quarter turn forward on the second.
func LabelRotation(a Angle, firstHalf bool) Angle {
	if firstHalf {
		return a - FullTurn/4
	}
	return a + FullTurn/4
}

// Tick is one of the marks around the dial.
type Tick struct {
	Index int
	Angle Angle
	Wide  bool // quarter-hour marks
}

// Ticks returns the 60 dial marks in clockwise order from 12 o'clock.
func Ticks() []Tick {
	ticks := make([]Tick, TickCount)
	for i := range ticks {
		ticks[i] = Tick{
			Index: i,
			Angle: turnFraction(i, TickCount),
			Wide:  i%15 == 0,
		}
	}
	return ticks
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
