package timecode

import "testing"

func TestFormat(t *testing.T) {
	tc, err := At(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range []struct {
		name   string
		layout string
		want   string
	}{
		{"BareFields", "%H:%M:%S:%f", "1:2:3:4"},
		{"ZeroPad", "%02H-%02M-%02S-%03f", "01-02-03-004"},
		{"SpacePad", "%3H", "  1"},
		{"Total", "%i frames", "111694 frames"},
		{"Rate", "%r fps", "29.97 fps"},
		{"Default", "tc=%T", "tc=01:02:03:04"},
		{"Percent", "100%%", "100%"},
		{"PercentThenDirective", "%%H and %H", "%H and 1"},
		{"Unknown", "%q %04x", "%q %04x"},
		{"TrailingPercent", "50%", "50%"},
		{"TrailingWidth", "50%03", "50%03"},
		{"Literal", "no directives", "no directives"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if have := tc.Format(tt.layout); have != tt.want {
				t.Fatalf("have %q, want %q", have, tt.want)
			}
		})
	}
}

func TestStringDelimiters(t *testing.T) {
	for _, tt := range []struct {
		name string
		make func() (Timecode, error)
		want string
	}{
		{
			"Default",
			func() (Timecode, error) { return At(2, 0, 0, 12) },
			"02:00:00:12",
		},
		{
			"DropFrameUsesSemicolon",
			func() (Timecode, error) { return Config{DropFrame: Bool(true)}.At(0, 0, 2) },
			"00:00:02;00",
		},
		{
			"ExplicitFrameDelimiter",
			func() (Timecode, error) {
				return Config{DropFrame: Bool(true), FrameDelimiter: ":"}.At(0, 0, 2)
			},
			"00:00:02:00",
		},
		{
			"CustomDelimiter",
			func() (Timecode, error) { return Config{Delimiter: "."}.At(1, 2, 3, 4) },
			"01.02.03:04",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := tt.make()
			if err != nil {
				t.Fatal(err)
			}
			if have := tc.String(); have != tt.want {
				t.Fatalf("have %q, want %q", have, tt.want)
			}
		})
	}
}
