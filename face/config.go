package face

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"

	"github.com/aldld/numberhands/settings"
)

type Config struct {
	Logger LoggerConfig      `toml:"logger" yaml:"logger"`
	Face   settings.Settings `toml:"face" yaml:"face"`
}

type LoggerConfig struct {
	Level string `toml:"level" yaml:"level"`
}

// LevelTrace sits below Debug and carries per-frame output such as display
// lists.
const LevelTrace = slog.LevelDebug - 4

func (c LoggerConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info", "":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func DefaultConfig() Config {
	return Config{
		Logger: LoggerConfig{Level: "info"},
		Face:   settings.Default(),
	}
}

// LoadConfig reads a TOML config, or YAML if the path ends in .yaml or .yml.
// Keys missing from the file keep their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return decodeYAML(data)
	default:
		return decodeTOML(data)
	}
}

func decodeTOML(data []byte) (Config, error) {
	config := DefaultConfig()
	md, err := toml.Decode(string(data), &config)
	if err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return config, nil
	}
	errs := make([]error, len(undecoded))
	for i, key := range undecoded {
		errs[i] = fmt.Errorf("unknown config key %q", key.String())
	}
	return Config{}, errors.Join(errs...)
}

func decodeYAML(data []byte) (Config, error) {
	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	return config, nil
}
