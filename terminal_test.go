package ascender

import (
	"strings"
	"testing"
)

func TestTerminalColor(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"black", 0, 0, 0, 16},
		{"almost black", 3, 3, 3, 16},
		{"white", 255, 255, 255, 231},
		{"almost white", 252, 252, 252, 231},
		{"red", 255, 0, 0, 196},
		{"green", 0, 255, 0, 46},
		{"blue", 0, 0, 255, 21},
		{"tan", 215, 175, 135, 180},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TerminalColor(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("TerminalColor(%d, %d, %d) = %d, want %d", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestCubeIndex(t *testing.T) {
	tests := []struct {
		v    uint8
		want uint8
	}{
		{0, 0},
		{47, 0},
		{48, 1},
		{95, 1},
		{115, 1}, // equidistant from 95 and 135
		{116, 2},
		{155, 2}, // equidistant from 135 and 175
		{235, 4}, // equidistant from 215 and 255
		{255, 5},
	}
	for _, tt := range tests {
		if got := CubeIndex(tt.v); got != tt.want {
			t.Errorf("CubeIndex(%d) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := [][3]uint8{
		{0, 0, 0}, {255, 255, 255}, {255, 0, 0}, {0, 255, 0},
		{0, 0, 255}, {215, 175, 135}, {12, 200, 99},
	}
	for _, c := range colors {
		r, g, b := HSVFromRGB(c[0], c[1], c[2]).RGB()
		if r != c[0] || g != c[1] || b != c[2] {
			t.Errorf("Round trip of %v gave %v", c, [3]uint8{r, g, b})
		}
	}
}

func TestToTerminal256(t *testing.T) {
	grid := Grid{
		{
			{Char: '@', FG: HSVFromRGB(255, 255, 255)},
			{Char: '#', FG: HSVFromRGB(255, 0, 0)},
		},
		{
			{Char: '.', FG: HSV{}},
			{Char: 'x', FG: HSVFromRGB(0, 0, 255)},
		},
	}
	want := "\x1b[38;5;231m@\x1b[0m\x1b[38;5;196m#\x1b[0m\n" +
		"\x1b[38;5;16m.\x1b[0m\x1b[38;5;21mx\x1b[0m\n"
	if got := ToTerminal256(grid); got != want {
		t.Errorf("ToTerminal256 =\n%q\nwant\n%q", got, want)
	}

	if got := ToTerminal256(Grid{}); got != "" {
		t.Errorf("Empty grid should render to an empty string, got %q", got)
	}
}

func TestToPlainText(t *testing.T) {
	grid := Grid{
		{{Char: '@'}, {Char: '#'}},
		{{Char: '.'}, {Char: 'x'}},
	}
	if got := ToPlainText(grid); got != "@#\n.x\n" {
		t.Errorf("Unexpected plain text %q", got)
	}
	if got := strings.Join(grid.Lines(), "|"); got != "@#|.x" {
		t.Errorf("Unexpected lines %q", got)
	}
	if grid.Rows() != 2 || grid.Cols() != 2 {
		t.Errorf("Expected 2x2, got %dx%d", grid.Rows(), grid.Cols())
	}
}
