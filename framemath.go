package timecode

import "github.com/pkg/errors"

// fieldMax bounds every displayed field; hours do not wrap at 24.
const fieldMax = 99

// fields is a decoded hours:minutes:seconds:frames tuple.
type fields struct {
	h, m, s, f int
}

// droppedPerMinute generalizes the classic "drop 2 frame numbers per
// minute" 30fps rule in proportion to the rounded rate, so 30fps
// drops 2 and 60fps drops 4. Integer form of round(rate*2/30).
func droppedPerMinute(rate int) int {
	return (rate*2 + 15) / 30
}

// frameCount encodes a field tuple to a total frame count under the
// given rate and counting scheme.
func frameCount(v fields, r Rate, drop bool) (int, error) {
	rate := r.Rounded()
	if rate < 1 {
		return 0, errors.Wrapf(ErrInvalidRate, "%v fps", r.FPS())
	}
	if err := checkFields(v); err != nil {
		return 0, err
	}
	n := ((v.h*60+v.m)*60+v.s)*rate + v.f
	if drop {
		min := v.h*60 + v.m
		n -= droppedPerMinute(rate) * (min - min/10)
	}
	return n, nil
}

// timeOf decodes a total frame count to a field tuple under the given
// rate and counting scheme. Inverse of frameCount; re-encoding the
// result reproduces n exactly.
func timeOf(n int, r Rate, drop bool) (fields, error) {
	rate := r.Rounded()
	if rate < 1 {
		return fields{}, errors.Wrapf(ErrInvalidRate, "%v fps", r.FPS())
	}
	if n < 0 {
		return fields{}, errors.Wrapf(ErrOutOfRange, "%d frames", n)
	}
	if drop {
		d := droppedPerMinute(rate)
		per10 := 600*rate - 9*d // frames in a whole ten-minute block
		perMin := 60*rate - d   // frames in a non-exempt minute
		if d > 0 && per10 > 0 && perMin > 0 {
			blocks := n / per10
			rem := n % per10
			// the first minute of each block is exempt, so the
			// rem-d term stays zero until it ends
			n += 9 * d * blocks
			n += d * ((rem - d) / perMin)
		}
	}
	v := fields{
		h: n / (3600 * rate),
		m: n / (60 * rate) % 60,
		s: n / rate % 60,
		f: n % rate,
	}
	if err := checkFields(v); err != nil {
		return fields{}, err
	}
	return v, nil
}

func checkFields(v fields) error {
	for _, n := range [...]int{v.h, v.m, v.s, v.f} {
		if n < 0 || n > fieldMax {
			return errors.Wrapf(ErrOutOfRange, "%02d:%02d:%02d:%02d", v.h, v.m, v.s, v.f)
		}
	}
	return nil
}
