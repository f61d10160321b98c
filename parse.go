package timecode

import (
	"strconv"

	"github.com/pkg/errors"
)

// Parse builds a Timecode from a delimited string such as
// "01:02:03:04" using the built-in defaults. A "." or ";" before the
// frames field switches on drop-frame counting unless the
// configuration says otherwise.
func Parse(s string, cfg ...Config) (Timecode, error) {
	return first(cfg).Parse(s)
}

// New builds a Timecode from a total frame count using the built-in
// defaults.
func New(frames int, cfg ...Config) (Timecode, error) {
	return first(cfg).New(frames)
}

// At builds a Timecode from up to four field values in
// hours, minutes, seconds, frames order; missing trailing fields are
// zero.
func At(hmsf ...int) (Timecode, error) {
	return Config{}.At(hmsf...)
}

func first(cfg []Config) Config {
	if len(cfg) > 0 {
		return cfg[0]
	}
	return Config{}
}

// New builds a Timecode from a total frame count.
func (c Config) New(frames int) (Timecode, error) {
	if err := c.check(); err != nil {
		return Timecode{}, err
	}
	t := Timecode{
		frames:     frames,
		rate:       FromFPS(c.fps()),
		drop:       c.drop(nil),
		delim:      c.delim(),
		frameDelim: c.FrameDelimiter,
	}
	if _, err := timeOf(t.frames, t.rate, t.drop); err != nil {
		return Timecode{}, err
	}
	return t, nil
}

// At builds a Timecode from up to four field values.
func (c Config) At(hmsf ...int) (Timecode, error) {
	if len(hmsf) > 4 {
		return Timecode{}, errors.Wrapf(ErrParse, "%d fields", len(hmsf))
	}
	var n [4]int
	copy(n[:], hmsf)
	return c.from(fields{n[0], n[1], n[2], n[3]}, nil, "")
}

// Parse builds a Timecode from a delimited string.
func (c Config) Parse(s string) (Timecode, error) {
	if err := c.check(); err != nil {
		return Timecode{}, err
	}
	v, seps, err := scan(s)
	if err != nil {
		return Timecode{}, err
	}

	// the h/m/s separators must match the configured delimiter;
	// the frames slot also always admits ";" and "." so that
	// drop-frame input parses under any configuration
	d := c.delim()
	fd := c.FrameDelimiter
	if fd == "" {
		fd = DefaultFrameDelimiter
	}
	if string(seps[0]) != d || string(seps[1]) != d {
		return Timecode{}, errors.Wrapf(ErrParse, "%q", s)
	}
	if f := seps[2]; string(f) != fd && f != ';' && f != '.' {
		return Timecode{}, errors.Wrapf(ErrParse, "%q", s)
	}

	// a "." or ";" frame delimiter means drop-frame, unless the
	// caller explicitly says otherwise
	var inferred *bool
	if seps[2] == ';' || seps[2] == '.' {
		inferred = Bool(true)
	}

	t, err := c.from(v, inferred, s)
	if err != nil {
		return Timecode{}, err
	}
	if c.FrameDelimiter == "" {
		t.frameDelim = string(seps[2])
	}
	if c.Delimiter == "" {
		t.delim = string(seps[0])
	}
	return t, nil
}

// from encodes a validated tuple into a Timecode carrying the
// resolved options.
func (c Config) from(v fields, inferred *bool, src string) (Timecode, error) {
	if err := c.check(); err != nil {
		return Timecode{}, err
	}
	t := Timecode{
		rate:       FromFPS(c.fps()),
		drop:       c.drop(inferred),
		delim:      c.delim(),
		frameDelim: c.FrameDelimiter,
		src:        src,
	}
	n, err := frameCount(v, t.rate, t.drop)
	if err != nil {
		return Timecode{}, err
	}
	t.frames = n
	return t, nil
}

// scan splits s into exactly four numeric fields separated by single
// non-digit characters, returning the fields and the three
// separators.
func scan(s string) (fields, [3]byte, error) {
	var v [4]int
	var seps [3]byte
	field, start := 0, 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] >= '0' && s[i] <= '9' {
			continue
		}
		if field == 4 || i == start {
			return fields{}, seps, errors.Wrapf(ErrParse, "%q", s)
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return fields{}, seps, errors.Wrapf(ErrParse, "%q", s)
		}
		v[field] = n
		if i < len(s) {
			if field == 3 {
				return fields{}, seps, errors.Wrapf(ErrParse, "%q", s)
			}
			seps[field] = s[i]
		}
		field++
		start = i + 1
	}
	if field != 4 {
		return fields{}, seps, errors.Wrapf(ErrParse, "%q", s)
	}
	return fields{v[0], v[1], v[2], v[3]}, seps, nil
}
