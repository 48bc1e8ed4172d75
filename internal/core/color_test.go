package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		want Color
	}{
		{"red", ColorRed},
		{" Bright_Yellow ", ColorBrightYellow},
		{"gray", ColorGray},
		{"", ColorDefault},
		{"chartreuse", ColorDefault},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.name); got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColorNamesRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		if got := ParseColor(c.String()); got != c {
			t.Errorf("ParseColor(%q) = %v, want %v", c.String(), got, c)
		}
	}
	if Color(200).String() != "default" {
		t.Error("out of range color should print as default")
	}
}
