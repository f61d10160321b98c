package timecode

import "github.com/pkg/errors"

// Operand is one side of an arithmetic or comparison operation:
// a Timecode, a bare frame count, or an unparsed timecode string.
// Strings are parsed with the options of the Timecode operand they
// are combined with.
type Operand struct {
	kind opKind
	n    int
	s    string
	t    Timecode
}

type opKind int

const (
	opFrames opKind = iota
	opRaw
	opValue
)

// Frames makes an Operand from a total frame count.
func Frames(n int) Operand { return Operand{kind: opFrames, n: n} }

// Raw makes an Operand from an unparsed timecode string.
func Raw(s string) Operand { return Operand{kind: opRaw, s: s} }

// Value makes an Operand from a Timecode.
func Value(t Timecode) Operand { return Operand{kind: opValue, t: t} }

// total resolves the operand to a frame count, parsing strings with c.
func (o Operand) total(c Config) (int, error) {
	switch o.kind {
	case opRaw:
		t, err := c.Parse(o.s)
		if err != nil {
			return 0, err
		}
		return t.frames, nil
	case opValue:
		return o.t.frames, nil
	default:
		return o.n, nil
	}
}

// owner picks the Timecode whose options the result inherits: the
// left operand when it is a Timecode, otherwise the right. Both nil
// and the built-in defaults apply when neither side is one.
func owner(a, b Operand) *Timecode {
	if a.kind == opValue {
		return &a.t
	}
	if b.kind == opValue {
		return &b.t
	}
	return nil
}

// Add returns a+b in total frames. The result takes its rate,
// counting scheme and delimiters from the left operand when it is a
// Timecode, else from the right; rates are never normalized, so
// adding timecodes at different rates adds their raw frame counts.
func Add(a, b Operand) (Timecode, error) {
	return combine(a, b, func(x, y int) int { return x + y })
}

// Sub returns a-b in total frames. A negative result is rejected
// with ErrOutOfRange.
func Sub(a, b Operand) (Timecode, error) {
	return combine(a, b, func(x, y int) int { return x - y })
}

// Mul returns a*b in total frames.
func Mul(a, b Operand) (Timecode, error) {
	return combine(a, b, func(x, y int) int { return x * y })
}

// Div returns a/b in total frames, truncating.
func Div(a, b Operand) (Timecode, error) {
	t, err := resolve(a, b)
	if err != nil {
		return Timecode{}, err
	}
	if t[1] == 0 {
		return Timecode{}, errors.Wrap(ErrOutOfRange, "division by zero")
	}
	return derive(owner(a, b), t[0]/t[1])
}

// Compare returns -1, 0 or 1 ordering a before, equal to, or after
// b by total frame count. Options play no part in ordering.
func Compare(a, b Operand) (int, error) {
	t, err := resolve(a, b)
	if err != nil {
		return 0, err
	}
	switch {
	case t[0] < t[1]:
		return -1, nil
	case t[0] > t[1]:
		return 1, nil
	}
	return 0, nil
}

func combine(a, b Operand, f func(int, int) int) (Timecode, error) {
	t, err := resolve(a, b)
	if err != nil {
		return Timecode{}, err
	}
	return derive(owner(a, b), f(t[0], t[1]))
}

func resolve(a, b Operand) ([2]int, error) {
	c := Config{}
	if o := owner(a, b); o != nil {
		c = o.Config()
	}
	x, err := a.total(c)
	if err != nil {
		return [2]int{}, err
	}
	y, err := b.total(c)
	if err != nil {
		return [2]int{}, err
	}
	return [2]int{x, y}, nil
}

// derive builds a result holding total frames n with the options of
// o, or the built-in defaults when no Timecode took part.
func derive(o *Timecode, n int) (Timecode, error) {
	if o == nil {
		return New(n)
	}
	t := Timecode{
		frames:     n,
		rate:       o.rate,
		drop:       o.drop,
		delim:      o.delim,
		frameDelim: o.frameDelim,
	}
	if _, err := timeOf(t.frames, t.rate, t.drop); err != nil {
		return Timecode{}, err
	}
	return t, nil
}

// Add returns t plus o, keeping t's options.
func (t Timecode) Add(o Operand) (Timecode, error) { return Add(Value(t), o) }

// Sub returns t minus o, keeping t's options.
func (t Timecode) Sub(o Operand) (Timecode, error) { return Sub(Value(t), o) }

// Mul returns t times o, keeping t's options.
func (t Timecode) Mul(o Operand) (Timecode, error) { return Mul(Value(t), o) }

// Div returns t divided by o, keeping t's options.
func (t Timecode) Div(o Operand) (Timecode, error) { return Div(Value(t), o) }

// Next returns the timecode one frame later.
func (t Timecode) Next() (Timecode, error) { return t.Add(Frames(1)) }

// Prev returns the timecode one frame earlier.
func (t Timecode) Prev() (Timecode, error) { return t.Sub(Frames(1)) }

// Cmp orders t against o by total frame count.
func (t Timecode) Cmp(o Operand) (int, error) { return Compare(Value(t), o) }

// Equal reports whether t and o name the same total frame count,
// whatever their options.
func (t Timecode) Equal(o Operand) (bool, error) {
	n, err := t.Cmp(o)
	return n == 0, err
}
