package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// String renders the timecode in its default HH:MM:SS:FF form. A
// value parsed from a string reproduces the original layout exactly;
// otherwise the stored delimiters are used, with ";" before the
// frames of a drop-frame value unless a frame delimiter was set
// explicitly.
func (t Timecode) String() string {
	if t.src != "" {
		return t.src
	}
	v := t.fields()
	d := t.delim
	if d == "" {
		d = DefaultDelimiter
	}
	fd := t.frameDelim
	if fd == "" {
		fd = DefaultFrameDelimiter
		if t.drop {
			fd = ";"
		}
	}
	return fmt.Sprintf("%02d%s%02d%s%02d%s%02d", v.h, d, v.m, d, v.s, fd, v.f)
}

// Format renders the timecode through a strftime-like layout of
// literal text and directives:
//
//	%H  hours          %f  frames
//	%M  minutes        %i  total frame count
//	%S  seconds        %r  frame rate
//	%T  default string form
//	%%  literal percent
//
// A directive may carry a printf-style width such as %02H or %03f; no
// leading zeros are added without one. Unknown directives pass
// through untouched.
func (t Timecode) Format(layout string) string {
	var b strings.Builder
	v := t.fields()
	for i := 0; i < len(layout); {
		if layout[i] != '%' {
			b.WriteByte(layout[i])
			i++
			continue
		}
		j := i + 1
		for j < len(layout) && layout[j] >= '0' && layout[j] <= '9' {
			j++
		}
		if j == len(layout) {
			b.WriteString(layout[i:])
			break
		}
		width := layout[i+1 : j]
		switch layout[j] {
		case 'H':
			writeInt(&b, width, v.h)
		case 'M':
			writeInt(&b, width, v.m)
		case 'S':
			writeInt(&b, width, v.s)
		case 'f':
			// frames may be fractional at a non-integral
			// rate; whole values render as plain integers
			writeNumber(&b, width, float64(v.f))
		case 'i':
			writeInt(&b, width, t.frames)
		case 'r':
			writeNumber(&b, width, t.rate.FPS())
		case 'T':
			b.WriteString(t.String())
		case '%':
			b.WriteByte('%')
		default:
			b.WriteString(layout[i : j+1])
		}
		i = j + 1
	}
	return b.String()
}

func writeInt(b *strings.Builder, width string, n int) {
	if width == "" {
		b.WriteString(strconv.Itoa(n))
		return
	}
	fmt.Fprintf(b, "%"+width+"d", n)
}

func writeNumber(b *strings.Builder, width string, n float64) {
	if n == float64(int(n)) {
		writeInt(b, width, int(n))
		return
	}
	if width == "" {
		b.WriteString(strconv.FormatFloat(n, 'g', -1, 64))
		return
	}
	fmt.Fprintf(b, "%"+width+"v", n)
}
