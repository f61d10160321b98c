package timecode

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"
)

// Range is a pair of timecodes bounding an interval that starts at
// Range[0] and ends at Range[1]. Both endpoints carry their own rate
// and counting scheme; interval math runs on their wall-clock
// positions, so mixed-rate ranges behave sensibly.
type Range [2]Timecode

// NewRange builds a Range from start and end expressed in decimal
// seconds under cfg, frame digits included.
func NewRange(start, end float64, cfg ...Config) (Range, error) {
	c := first(cfg)
	in, err := c.at(start)
	if err != nil {
		return Range{}, err
	}
	out, err := c.at(end)
	if err != nil {
		return Range{}, err
	}
	return Range{in, out}, nil
}

// at converts decimal seconds into a Timecode at the rounded rate.
func (c Config) at(seconds float64) (Timecode, error) {
	rate := FromFPS(c.fps()).Rounded()
	return c.New(int(math.Round(seconds * float64(rate))))
}

// Canon returns the range in proper order, where r[0] is no later
// than r[1]
func (r Range) Canon() Range {
	if r[0].Duration() > r[1].Duration() {
		r[0], r[1] = r[1], r[0]
	}
	return r
}

// Size returns the duration of the Range
func (r Range) Size() time.Duration {
	dx := r[1].Duration() - r[0].Duration()
	if dx < 0 {
		dx = -dx
	}
	return dx
}

func (r Range) String() string {
	return fmt.Sprintf("(%s-%s)", r[0], r[1])
}

// MarshalJSON renders both endpoints in their default string form
func (r Range) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{r[0].String(), r[1].String()})
}

// Splice is a list of Ranges
type Splice []Range

func (s Splice) Len() int      { return len(s) }
func (s Splice) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Splice) Less(i, j int) bool {
	a, b := s[i][0].Duration(), s[j][0].Duration()
	if a < b {
		return true
	}
	return a == b && s[i].Size() < s[j].Size()
}

// Size returns the cummulative duration of the splice
func (s Splice) Size() (dt time.Duration) {
	for _, r := range s {
		dt += r.Size()
	}
	return dt
}

// Union returns the smallest Range that contains s
func (s Splice) Union() Range {
	if s.Len() == 0 {
		return Range{}
	}
	u := s[0]
	for _, r := range s[1:] {
		if r[0].Duration() < u[0].Duration() {
			u[0] = r[0]
		}
		if r[1].Duration() > u[1].Duration() {
			u[1] = r[1]
		}
	}
	return u
}

// In returns true if the splice is contained by r
func (s Splice) In(r Range) bool {
	for _, c := range s {
		if c[0].Duration() < r[0].Duration() || c[1].Duration() > r[1].Duration() {
			return false
		}
	}
	return true
}

// Sorted returns true if the splice is sorted
func (s Splice) Sorted() bool {
	return sort.IsSorted(s)
}

// UnmarshalText unmarshals the splice from a two-dimensional JSON
// array of second pairs, [[%f,%f], [%f,%f], ... [%f,%f]], built into
// timecodes with the built-in defaults.
func (s *Splice) UnmarshalText(p []byte) error {
	if len(p) == 0 {
		return nil
	}
	var pairs [][2]float64
	if err := json.Unmarshal(p, &pairs); err != nil {
		return err
	}
	out := make(Splice, 0, len(pairs))
	for _, p := range pairs {
		r, err := NewRange(p[0], p[1])
		if err != nil {
			return err
		}
		out = append(out, r)
	}
	*s = out
	return nil
}
