// Package settings holds the user preferences the face reads.
//
// The face never writes settings. They arrive from a config file at startup
// and on reload, and every enum decodes from the same short spellings used in
// config.toml ("10s", "always", "pink").
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/aldld/numberhands/theme"
)

// SecondMode controls whether and how the second hand is shown.
type SecondMode int

const (
	SecondsOff SecondMode = iota
	SecondsAlways
	SecondsReveal
)

func (m SecondMode) String() string {
	switch m {
	case SecondsOff:
		return "off"
	case SecondsAlways:
		return "always"
	case SecondsReveal:
		return "reveal"
	default:
		return fmt.Sprintf("SecondMode(%d)", int(m))
	}
}

// RevealDurations lists the reveal windows a user can pick.
var RevealDurations = []time.Duration{
	5 * time.Second,
	10 * time.Second,
	15 * time.Second,
	30 * time.Second,
}

// SecondDisplay is the second hand preference. Reveal is only meaningful when
// Mode is SecondsReveal.
type SecondDisplay struct {
	Mode   SecondMode
	Reveal time.Duration
}

var (
	SecondsHidden = SecondDisplay{Mode: SecondsOff}
	SecondsShown  = SecondDisplay{Mode: SecondsAlways}
)

// RevealFor returns a timed reveal display for d.
func RevealFor(d time.Duration) SecondDisplay {
	return SecondDisplay{Mode: SecondsReveal, Reveal: d}
}

func (d SecondDisplay) String() string {
	if d.Mode == SecondsReveal {
		return d.Reveal.String()
	}
	return d.Mode.String()
}

func (d SecondDisplay) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *SecondDisplay) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	switch s {
	case "off", "no", "none":
		*d = SecondsHidden
		return nil
	case "always":
		*d = SecondsShown
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("seconds: %q is not off, always or a reveal duration", string(text))
	}
	for _, allowed := range RevealDurations {
		if dur == allowed {
			*d = RevealFor(dur)
			return nil
		}
	}
	return fmt.Errorf("seconds: unsupported reveal duration %v", dur)
}

// Backlight is how long the light stays on after a wake. Zero disables it.
type Backlight time.Duration

const (
	BacklightOff Backlight = 0
	Backlight3s            = Backlight(3 * time.Second)
	Backlight5s            = Backlight(5 * time.Second)
	Backlight10s           = Backlight(10 * time.Second)
)

func (b Backlight) Duration() time.Duration {
	return time.Duration(b)
}

func (b Backlight) String() string {
	if b == BacklightOff {
		return "off"
	}
	return time.Duration(b).String()
}

func (b Backlight) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Backlight) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	if s == "off" || s == "no" || s == "none" {
		*b = BacklightOff
		return nil
	}

	dur, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("backlight: %q is not off or a duration", string(text))
	}
	switch v := Backlight(dur); v {
	case Backlight3s, Backlight5s, Backlight10s:
		*b = v
		return nil
	}
	return fmt.Errorf("backlight: unsupported duration %v", dur)
}

type Settings struct {
	Seconds     SecondDisplay `toml:"seconds" yaml:"seconds"`
	ShowNumbers bool          `toml:"show_numbers" yaml:"show_numbers"`
	ShowDate    bool          `toml:"show_date" yaml:"show_date"`
	Backlight   Backlight     `toml:"backlight" yaml:"backlight"`
	Theme       theme.ID      `toml:"theme" yaml:"theme"`
}

// Default mirrors the values a fresh install starts with.
func Default() Settings {
	return Settings{
		Seconds:     RevealFor(10 * time.Second),
		ShowNumbers: true,
		ShowDate:    true,
		Backlight:   Backlight3s,
		Theme:       theme.Default,
	}
}
