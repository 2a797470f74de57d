package ascender

import (
	"strings"

	"github.com/muesli/termenv"
)

// cubeLevels are the channel intensities of the 6x6x6 color cube that
// occupies indices 16-231 of the 256-color terminal palette.
var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// CubeIndex returns the position of v on one axis of the terminal color
// cube. Ties go to the lower index.
func CubeIndex(v uint8) uint8 {
	best, bestDist := 0, 256
	for i, level := range cubeLevels {
		d := int(v) - level
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return uint8(best)
}

// TerminalColor returns the 256-color palette index of the color cube
// entry nearest to the given RGB color. The grayscale ramp and the sixteen
// base colors are never used.
func TerminalColor(r, g, b uint8) uint8 {
	return 36*CubeIndex(r) + 6*CubeIndex(g) + CubeIndex(b) + 16
}

// TerminalColorOf returns the 256-color palette index for a chaxel color.
func TerminalColorOf(c HSV) uint8 {
	return TerminalColor(c.RGB())
}

// ToTerminal256 renders the grid for a 256-color terminal. Each character
// sets its own foreground and resets after itself; each row ends in a
// newline.
func ToTerminal256(grid Grid) string {
	var sb strings.Builder
	for _, row := range grid {
		for _, c := range row {
			sb.WriteString(termChaxel(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func termChaxel(c Chaxel) string {
	color := termenv.ANSI256Color(TerminalColorOf(c.FG))
	return termenv.ANSI256.String(string(c.Char)).Foreground(color).String()
}

// ToPlainText renders only the characters of the grid, one line per row.
func ToPlainText(grid Grid) string {
	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(rowString(row))
		sb.WriteByte('\n')
	}
	return sb.String()
}
