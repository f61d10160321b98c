package timecode

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Built-in defaults, used for any Config field left unset.
const (
	DefaultFPS            = 29.97
	DefaultDelimiter      = ":"
	DefaultFrameDelimiter = ":"
)

// envPrefix prefixes every environment variable read by FromEnv.
const envPrefix = "timecode"

// Config holds construction defaults. The zero value means "use the
// built-in defaults"; any field that is set overrides both the
// built-in default and anything inferred from the input itself, so
// Config{DropFrame: Bool(false)} defeats drop-frame sniffing while a
// nil DropFrame lets a ";" frame delimiter switch it on.
//
// A Config is a plain immutable value: thread one through your calls,
// or rely on the package-level entry points, which use the zero
// Config. Nothing in this package mutates global state.
type Config struct {
	// FPS is the frame rate. It may be fractional; it is rounded
	// to the nearest whole frame only for frame math. Nil means
	// DefaultFPS; anything at or below zero is rejected with
	// ErrInvalidRate.
	FPS *float64 `envconfig:"FPS" yaml:"fps" json:"fps,omitempty"`

	// DropFrame selects the counting scheme. Nil means "not set":
	// the parser may then infer drop-frame from a "." or ";" frame
	// delimiter, falling back to non-drop-frame.
	DropFrame *bool `envconfig:"DROPFRAME" yaml:"dropframe" json:"dropframe,omitempty"`

	// Delimiter separates hours, minutes and seconds in string
	// form. A single character; DefaultDelimiter when empty.
	Delimiter string `envconfig:"DELIMITER" yaml:"delimiter" json:"delimiter,omitempty"`

	// FrameDelimiter separates seconds from frames. When empty,
	// rendering uses ";" for drop-frame values and
	// DefaultFrameDelimiter otherwise.
	FrameDelimiter string `envconfig:"FRAME_DELIMITER" yaml:"frame_delimiter" json:"frame_delimiter,omitempty"`
}

// Bool returns a pointer to b, for setting Config.DropFrame inline.
func Bool(b bool) *bool { return &b }

// Float64 returns a pointer to v, for setting Config.FPS inline.
func Float64(v float64) *float64 { return &v }

// Defaults returns the process-lifetime default configuration.
func Defaults() Config {
	return Config{
		FPS:       Float64(DefaultFPS),
		Delimiter: DefaultDelimiter,
	}
}

// FromEnv builds a Config from TIMECODE_FPS, TIMECODE_DROPFRAME,
// TIMECODE_DELIMITER and TIMECODE_FRAME_DELIMITER.
func FromEnv() (Config, error) {
	var c Config
	if err := envconfig.Process(envPrefix, &c); err != nil {
		return Config{}, errors.Wrap(err, "reading timecode defaults from environment")
	}
	return c, nil
}

// LoadConfig loads a Config from a YAML file
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config file")
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrap(err, "parsing config file")
	}
	return c, nil
}

// fps returns the effective frame rate. It can be invalid; rate
// checks live in the frame math.
func (c Config) fps() float64 {
	if c.FPS == nil {
		return DefaultFPS
	}
	return *c.FPS
}

// check rejects settings no timecode can carry: an explicit rate at
// or below zero, or a delimiter wider than one character.
func (c Config) check() error {
	if c.FPS != nil && *c.FPS <= 0 {
		return errors.Wrapf(ErrInvalidRate, "%v fps", *c.FPS)
	}
	if len(c.Delimiter) > 1 {
		return errors.Wrapf(ErrParse, "delimiter %q", c.Delimiter)
	}
	if len(c.FrameDelimiter) > 1 {
		return errors.Wrapf(ErrParse, "frame delimiter %q", c.FrameDelimiter)
	}
	return nil
}

// drop returns the effective drop-frame flag given the flag sniffed
// from the input, if any. An explicit setting always wins.
func (c Config) drop(inferred *bool) bool {
	if c.DropFrame != nil {
		return *c.DropFrame
	}
	if inferred != nil {
		return *inferred
	}
	return false
}

func (c Config) delim() string {
	if c.Delimiter == "" {
		return DefaultDelimiter
	}
	return c.Delimiter
}
