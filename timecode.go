package timecode

import (
	"encoding/json"
	"math"
	"time"

	"github.com/pkg/errors"
)

// Timecode is an immutable position in a video stream. The backing
// representation is a total frame count plus the rate and counting
// scheme it was encoded under; the displayed fields are decoded on
// demand. Derived values are always new instances, except that
// ToDropFrame and ToNonDropFrame return the receiver when it is
// already in the requested mode.
type Timecode struct {
	frames int
	rate   Rate
	drop   bool

	// rendering only, never part of equality or ordering
	delim      string
	frameDelim string // "" selects ";" or ":" by counting scheme
	src        string // original string layout, "" unless parsed
}

// TotalFrames returns the number of frames elapsed since 00:00:00:00.
func (t Timecode) TotalFrames() int { return t.frames }

// FPS returns the frame rate as given at construction, not the
// rounded value used for frame math.
func (t Timecode) FPS() float64 { return t.rate.FPS() }

// Rate returns the frame rate in rational form.
func (t Timecode) Rate() Rate { return t.rate }

// IsDropFrame reports whether the timecode uses drop-frame counting.
func (t Timecode) IsDropFrame() bool { return t.drop }

func (t Timecode) Hours() int   { return t.fields().h }
func (t Timecode) Minutes() int { return t.fields().m }
func (t Timecode) Seconds() int { return t.fields().s }

// Frames returns the frames field of the display form, not the total
// frame count.
func (t Timecode) Frames() int { return t.fields().f }

// fields decodes the display tuple. Construction already validated
// the (frames, rate, scheme) triple, so decoding cannot fail here.
func (t Timecode) fields() fields {
	v, _ := timeOf(t.frames, t.rate, t.drop)
	return v
}

// Duration returns the wall-clock length of the position at the real
// (unrounded) rate.
func (t Timecode) Duration() time.Duration {
	fps := t.rate.FPS()
	if fps <= 0 {
		return 0
	}
	return time.Duration(float64(t.frames) / fps * float64(time.Second))
}

// Config returns the construction options carried by the value, as
// inherited by derived timecodes.
func (t Timecode) Config() Config {
	drop := t.drop
	return Config{
		FPS:            Float64(t.rate.FPS()),
		DropFrame:      &drop,
		Delimiter:      t.delim,
		FrameDelimiter: t.frameDelim,
	}
}

// Convert returns the equivalent timecode at a new rate, preserving
// the wall-clock duration of the position rather than the raw frame
// count. The result uses non-drop-frame counting and inherits the
// receiver's delimiters; pass a Config to override either. The
// target rate is always the fps argument: an FPS set on the override
// has no effect.
func (t Timecode) Convert(fps float64, cfg ...Config) (Timecode, error) {
	r := FromFPS(fps)
	if fps <= 0 || r.Rounded() < 1 {
		return Timecode{}, errors.Wrapf(ErrInvalidRate, "%v fps", fps)
	}
	var c Config
	if len(cfg) > 0 {
		c = cfg[0]
	}
	c.FPS = nil // the argument is the rate, see above
	if err := c.check(); err != nil {
		return Timecode{}, err
	}
	n := Timecode{
		frames:     int(math.Round(float64(t.frames) * float64(r.Rounded()) / float64(t.rate.Rounded()))),
		rate:       r,
		drop:       c.drop(nil),
		delim:      t.delim,
		frameDelim: t.frameDelim,
	}
	if c.Delimiter != "" {
		n.delim = c.Delimiter
	}
	if c.FrameDelimiter != "" {
		n.frameDelim = c.FrameDelimiter
	}
	if _, err := timeOf(n.frames, n.rate, n.drop); err != nil {
		return Timecode{}, err
	}
	return n, nil
}

// ToDropFrame reinterprets the same total frame count under
// drop-frame counting at the same rate. The receiver is returned
// unchanged when already drop-frame.
func (t Timecode) ToDropFrame() (Timecode, error) {
	return t.recount(true)
}

// ToNonDropFrame is the inverse of ToDropFrame.
func (t Timecode) ToNonDropFrame() (Timecode, error) {
	return t.recount(false)
}

func (t Timecode) recount(drop bool) (Timecode, error) {
	if t.drop == drop {
		return t, nil
	}
	n := t
	n.drop = drop
	n.src = "" // display fields change, the parsed layout is stale
	if _, err := timeOf(n.frames, n.rate, n.drop); err != nil {
		return Timecode{}, err
	}
	return n, nil
}

// MarshalJSON renders the timecode in its default string form.
func (t Timecode) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts either a timecode string or a bare total
// frame count, interpreted with the built-in defaults.
func (t *Timecode) UnmarshalJSON(p []byte) error {
	var s string
	if err := json.Unmarshal(p, &s); err == nil {
		v, err := Parse(s)
		if err != nil {
			return err
		}
		*t = v
		return nil
	}
	var n int
	if err := json.Unmarshal(p, &n); err != nil {
		return errors.Wrapf(ErrParse, "%s", p)
	}
	v, err := New(n)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
