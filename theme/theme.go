// Package theme maps theme ids to the palettes the face is drawn with.
package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ID selects one of the built-in colour themes.
type ID int

const (
	White ID = iota
	Black
	Blue
	Red
	Pink

	numThemes
)

// Default is used whenever an ID cannot be resolved.
const Default = White

var names = [numThemes]string{
	White: "white",
	Black: "black",
	Blue:  "blue",
	Red:   "red",
	Pink:  "pink",
}

// Palette holds the four colours the face is drawn with.
type Palette struct {
	Background colorful.Color
	Hour       colorful.Color
	Minute     colorful.Color
	Second     colorful.Color
}

func palette(bg, hour, minute, second string) Palette {
	return Palette{
		Background: mustHex(bg),
		Hour:       mustHex(hour),
		Minute:     mustHex(minute),
		Second:     mustHex(second),
	}
}

// mustHex parses a palette literal and panics if it is malformed.
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("theme: bad colour %q: %v", s, err))
	}
	return c
}

var palettes = [numThemes]Palette{
	White: palette("#FFFFFF", "#AAAAAA", "#000000", "#FF0000"),
	Black: palette("#000000", "#AAAAAA", "#FFFFFF", "#FF0000"),
	Blue:  palette("#00AAFF", "#0000AA", "#0055FF", "#FF0000"),
	Red:   palette("#FF0000", "#000000", "#AAAAAA", "#00FF00"),
	Pink:  palette("#FF00FF", "#550055", "#550000", "#AA0000"),
}

// Valid reports whether id names a built-in theme.
func (id ID) Valid() bool {
	return id >= 0 && id < numThemes
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("theme(%d)", int(id))
	}
	return names[id]
}

// Resolve returns the palette for id, falling back to Default for unknown ids.
func Resolve(id ID) Palette {
	if !id.Valid() {
		id = Default
	}
	return palettes[id]
}

// Parse looks up a theme by name, case-insensitively.
func Parse(name string) (ID, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for id, n := range names {
		if n == name {
			return ID(id), true
		}
	}
	return Default, false
}

func (id ID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("invalid theme %d", int(id))
	}
	return []byte(names[id]), nil
}

func (id *ID) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown theme %q", string(text))
	}
	*id = parsed
	return nil
}

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// LegibleOver picks black or white, whichever contrasts more with c.
func LegibleOver(c colorful.Color) colorful.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return black
	}
	return white
}

// Hex formats c the way the device palette is written, e.g. "#FF0000".
func Hex(c colorful.Color) string {
	return strings.ToUpper(c.Clamped().Hex())
}
