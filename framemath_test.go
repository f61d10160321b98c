package timecode

import (
	"testing"

	"github.com/pkg/errors"
)

func TestFrameCountDropFrame(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   fields
		rate Rate
		want int
	}{
		{"FirstMinute", fields{0, 0, 59, 29}, Rate2997, 1799},
		{"MinuteOne", fields{0, 1, 0, 2}, Rate2997, 1800},
		{"TenMinutes", fields{0, 10, 0, 0}, Rate2997, 17982},
		{"OneHour", fields{1, 0, 0, 0}, Rate2997, 107892},
		{"MinuteOne60", fields{0, 1, 0, 4}, Rate5994, 3600},
		{"TenMinutes60", fields{0, 10, 0, 0}, Rate5994, 35964},
	} {
		t.Run(tt.name, func(t *testing.T) {
			have, err := frameCount(tt.in, tt.rate, true)
			if err != nil {
				t.Fatal(err)
			}
			if have != tt.want {
				t.Fatalf("have %d, want %d", have, tt.want)
			}
			back, err := timeOf(have, tt.rate, true)
			if err != nil {
				t.Fatal(err)
			}
			if back != tt.in {
				t.Fatalf("decoded %+v, want %+v", back, tt.in)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, rate := range []Rate{{15, 1}, Rate24, Rate25, Rate2997, Rate30, Rate5994} {
		for _, drop := range []bool{false, true} {
			for n := 0; n < 20000; n += 7 {
				v, err := timeOf(n, rate, drop)
				if err != nil {
					t.Fatalf("rate=%v drop=%v n=%d: %v", rate, drop, n, err)
				}
				back, err := frameCount(v, rate, drop)
				if err != nil {
					t.Fatal(err)
				}
				if back != n {
					t.Fatalf("rate=%v drop=%v: %d -> %+v -> %d", rate, drop, n, v, back)
				}
			}
		}
	}
}

// Drop-frame counting at 30fps never displays frame 0 or 1 at the
// start of a minute, except every tenth minute.
func TestDroppedFrameNumbersSkipped(t *testing.T) {
	for n := 0; n < 40*60*30; n++ {
		v, err := timeOf(n, Rate2997, true)
		if err != nil {
			t.Fatal(err)
		}
		if v.s == 0 && v.m%10 != 0 && v.f < 2 {
			t.Fatalf("frame %d displays as %+v", n, v)
		}
	}
}

func TestFrameMathBounds(t *testing.T) {
	if _, err := frameCount(fields{100, 0, 0, 0}, Rate30, false); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("have %v, want ErrOutOfRange", err)
	}
	if _, err := timeOf(100*3600*30, Rate30, false); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("have %v, want ErrOutOfRange", err)
	}
	if _, err := timeOf(-1, Rate30, false); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("have %v, want ErrOutOfRange", err)
	}
	if _, err := timeOf(100, Rate{}, false); !errors.Is(err, ErrInvalidRate) {
		t.Fatalf("have %v, want ErrInvalidRate", err)
	}
}

func TestDroppedPerMinute(t *testing.T) {
	for _, tt := range []struct{ rate, want int }{
		{30, 2}, {60, 4}, {15, 1}, {25, 2}, {24, 2},
	} {
		if have := droppedPerMinute(tt.rate); have != tt.want {
			t.Errorf("rate %d: have %d, want %d", tt.rate, have, tt.want)
		}
	}
}
