// Package render turns a face frame into an ordered list of vector drawing
// operations. Rasterizing the list is left to the display.
package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/slog"

	"github.com/aldld/numberhands/angle"
	"github.com/aldld/numberhands/clock"
	"github.com/aldld/numberhands/theme"
)

// Frame is everything needed to paint the face once.
type Frame struct {
	Time clock.ClockTime

	Hour   angle.Angle
	Minute angle.Angle
	Second angle.Angle

	ShowSecond  bool
	ShowNumbers bool
	ShowDate    bool

	Palette theme.Palette
}

func (f Frame) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("time", f.Time.String()),
		slog.Float64("hour_deg", f.Hour.Degrees()),
		slog.Float64("minute_deg", f.Minute.Degrees()),
	}
	if f.ShowSecond {
		attrs = append(attrs, slog.Float64("second_deg", f.Second.Degrees()))
	}
	return slog.GroupValue(attrs...)
}

type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// rotate turns p clockwise around the origin, in screen coordinates.
func (p Point) rotate(a angle.Angle) Point {
	sin, cos := math.Sincos(a.Radians())
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Op is a single drawing operation.
type Op interface {
	Kind() string
}

type Line struct {
	From, To Point
	Width    float64
	Color    colorful.Color
}

type Circle struct {
	Center Point
	Radius float64
	Color  colorful.Color
}

// Path is a filled polygon.
type Path struct {
	Points []Point
	Color  colorful.Color
}

// Text is drawn centred on At and rotated around it.
type Text struct {
	Value    string
	At       Point
	Font     string
	Size     int
	Rotation angle.Angle
	Color    colorful.Color
}

func (Line) Kind() string   { return "line" }
func (Circle) Kind() string { return "circle" }
func (Path) Kind() string   { return "path" }
func (Text) Kind() string   { return "text" }

type DisplayList []Op

// Count tallies ops by kind.
func (l DisplayList) Count() map[string]int {
	counts := make(map[string]int)
	for _, op := range l {
		counts[op.Kind()]++
	}
	return counts
}

func (l DisplayList) LogValue() slog.Value {
	counts := l.Count()
	return slog.GroupValue(
		slog.Int("ops", len(l)),
		slog.Int("lines", counts["line"]),
		slog.Int("circles", counts["circle"]),
		slog.Int("paths", counts["path"]),
		slog.Int("texts", counts["text"]),
	)
}

const (
	DateFont   = "gothic-18-bold"
	NumberFont = "din"

	hourWidth        = 18
	hourHeight       = 57
	minuteWidth      = 16
	minuteHeightUp   = 78
	minuteHeightDown = 20
	minuteHubRadius  = 13
	secondHubRadius  = 4

	dateTop = 125
)

var (
	hourPath = []Point{
		{-hourWidth / 2, 0},
		{-hourWidth / 2, -hourHeight},
		{hourWidth / 2, -hourHeight},
		{hourWidth / 2, 0},
	}
	minutePath = []Point{
		{-minuteWidth / 2, minuteHeightDown},
		{-minuteWidth / 2, -minuteHeightUp},
		{minuteWidth / 2, -minuteHeightUp},
		{minuteWidth / 2, minuteHeightDown},
	}

	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// Geometry is the size of the display in pixels.
type Geometry struct {
	Width, Height float64
}

// Rect is the reference rectangular display.
var Rect = Geometry{Width: 144, Height: 168}

func (g Geometry) Center() Point {
	return Point{g.Width / 2, g.Height / 2}
}

// Polar is the point at angle a on the dial circle shrunk by inset pixels.
func (g Geometry) Polar(inset float64, a angle.Angle) Point {
	r := math.Min(g.Width, g.Height)/2 - inset
	sin, cos := math.Sincos(a.Radians())
	c := g.Center()
	return Point{c.X + r*sin, c.Y - r*cos}
}

// Build lays out f, back to front.
func (g Geometry) Build(f Frame) DisplayList {
	var l DisplayList
	pal := f.Palette
	c := g.Center()
	ink := theme.LegibleOver(pal.Background)

	for _, tick := range angle.Ticks() {
		width := 1.0
		if tick.Wide {
			width = 3
		}
		l = append(l, Line{
			From:  g.Polar(5, tick.Angle),
			To:    g.Polar(8, tick.Angle),
			Width: width,
			Color: ink,
		})
	}

	if f.ShowDate {
		l = append(l, Text{
			Value: f.Time.Date,
			At:    Point{c.X, dateTop},
			Font:  DateFont,
			Size:  18,
			Color: ink,
		})
	}

	l = g.hand(l, c.Add(Point{-1, -1}), minutePath, minuteHubRadius, f.Minute, white)
	l = g.hand(l, c, minutePath, minuteHubRadius, f.Minute, pal.Minute)
	l = g.hand(l, c.Add(Point{1, 1}), hourPath, hourWidth/2, f.Hour, black)
	l = g.hand(l, c, hourPath, hourWidth/2, f.Hour, pal.Hour)

	if f.ShowNumbers {
		l = append(l,
			Text{
				Value:    fmt.Sprintf("%02d", f.Time.Minute),
				At:       g.Polar(20, f.Minute),
				Font:     NumberFont,
				Size:     15,
				Rotation: angle.LabelRotation(f.Minute, f.Time.Minute < 30),
				Color:    theme.LegibleOver(pal.Minute),
			},
			Text{
				Value:    fmt.Sprintf("%02d", f.Time.Hour),
				At:       g.Polar(42, f.Hour),
				Font:     NumberFont,
				Size:     18,
				Rotation: angle.LabelRotation(f.Hour, f.Time.Hour%12 < 6),
				Color:    theme.LegibleOver(pal.Hour),
			},
		)
	}

	if f.ShowSecond {
		tail := g.Polar(60, f.Second+angle.HalfTurn)
		tip := g.Polar(10, f.Second)
		down := Point{0, 1}
		l = append(l,
			Line{From: tail.Add(down), To: tip.Add(down), Width: 3, Color: black},
			Circle{Center: c, Radius: secondHubRadius, Color: black},
			Line{From: tail, To: tip, Width: 3, Color: pal.Second},
			Circle{Center: c, Radius: secondHubRadius, Color: pal.Second},
		)
	}

	return append(l, Circle{Center: c, Radius: 1, Color: pal.Background})
}

func (g Geometry) hand(l DisplayList, at Point, shape []Point, hub float64, a angle.Angle, color colorful.Color) DisplayList {
	points := make([]Point, len(shape))
	for i, p := range shape {
		points[i] = p.rotate(a).Add(at)
	}
	return append(l,
		Circle{Center: at, Radius: hub, Color: color},
		Path{Points: points, Color: color},
	)
}

// Painter builds a display list for each frame and hands it to a sink.
type Painter struct {
	Geometry Geometry
	sink     func(DisplayList)
}

func NewPainter(g Geometry, sink func(DisplayList)) *Painter {
	return &Painter{Geometry: g, sink: sink}
}

func (p *Painter) Render(f Frame) {
	p.sink(p.Geometry.Build(f))
}
