package layout

import "testing"

func TestParsePositionIgnoresCase(t *testing.T) {
	cases := []struct {
		in   string
		want Position
	}{
		{"left", Left},
		{"LeFt", Left},
		{"start", Left},
		{"CeNTer", Center},
		{" middle ", Center},
		{"RIGHT", Right},
		{"End", Right},
	}
	for _, tc := range cases {
		got, ok := ParsePosition(tc.in)
		if !ok || got != tc.want {
			t.Fatalf("ParsePosition(%q) = %v, %v; want %v", tc.in, got, ok, tc.want)
		}
	}
	if _, ok := ParsePosition("top"); ok {
		t.Fatalf("top is not a horizontal alignment")
	}
}
