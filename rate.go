package timecode

import (
	"fmt"
	"math"
)

// Rate contains individual integer elements of a fractional frame rate
// including both the numerator and its divisor
type Rate struct {
	Num int `json:"numerator,omitempty" yaml:"numerator"`
	Den int `json:"denominator,omitempty" yaml:"denominator"`
}

// Common broadcast rates
var (
	Rate23976 = Rate{24000, 1001}
	Rate24    = Rate{24, 1}
	Rate25    = Rate{25, 1}
	Rate2997  = Rate{30000, 1001}
	Rate30    = Rate{30, 1}
	Rate50    = Rate{50, 1}
	Rate5994  = Rate{60000, 1001}
	Rate60    = Rate{60, 1}
)

// FromFPS returns the Rate equivalent to the decimal rate fps. The
// result is exact for rates with up to six decimal places, so
// FromFPS(29.97).FPS() == 29.97.
func FromFPS(fps float64) Rate {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return Rate{}
	}
	const scale = 1e6
	n := int(math.Round(fps * scale))
	d := int(scale)
	g := gcd(n, d)
	return Rate{n / g, d / g}
}

func (r Rate) Empty() bool {
	return r.Num == 0 || r.Den == 0
}

// FPS returns the decimal frame rate
func (r Rate) FPS() float64 {
	if r.Den == 0 {
		return 0
	}
	return float64(r.Num) / float64(r.Den)
}

// Rounded returns the whole-frame rate used for frame math, e.g. 30
// for 30000/1001
func (r Rate) Rounded() int {
	return int(math.Round(r.FPS()))
}

func (r Rate) String() string {
	if r.Den == 1 {
		return fmt.Sprintf("%d", r.Num)
	}
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
