// Package ascender turns raster images into chaxel art: a grid of
// characters, each carrying the color of the image region it stands for,
// which can be printed to a 256-color terminal or rasterized back into a
// bitmap with an outline font.
package ascender

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// HSV is a color in the hue/saturation/value space. H is in degrees
// [0, 360), S and V are in [0, 1].
type HSV struct {
	H, S, V float64
}

// HSVFromRGB converts 8-bit RGB channels to HSV.
func HSVFromRGB(r, g, b uint8) HSV {
	h, s, v := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}.Hsv()
	return HSV{H: h, S: s, V: v}
}

// WithValue returns the color with its value replaced, keeping hue and
// saturation.
func (c HSV) WithValue(v float64) HSV {
	c.V = v
	return c
}

// RGB converts the color back to 8-bit RGB channels.
func (c HSV) RGB() (r, g, b uint8) {
	return colorful.Hsv(c.H, c.S, c.V).Clamped().RGB255()
}

// Color converts the color to an opaque color.RGBA.
func (c HSV) Color() color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// A Chaxel is one cell of the output art: the character to draw and the
// color to draw it in. The name is a blend of "character" and "pixel".
type Chaxel struct {
	Char rune
	FG   HSV
}

// Color returns the chaxel's foreground as an opaque RGBA color.
func (c Chaxel) Color() color.RGBA {
	return c.FG.Color()
}

// Grid is a row-major two-dimensional array of chaxels, indexed
// grid[y][x]. Every row has the same length.
type Grid [][]Chaxel

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, zero for an empty grid.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Empty reports whether the grid has no rows.
func (g Grid) Empty() bool {
	return len(g) == 0
}

// Lines returns the characters of each row without any color.
func (g Grid) Lines() []string {
	lines := make([]string, len(g))
	for y, row := range g {
		lines[y] = rowString(row)
	}
	return lines
}

func rowString(row []Chaxel) string {
	var sb strings.Builder
	sb.Grow(len(row))
	for _, c := range row {
		sb.WriteRune(c.Char)
	}
	return sb.String()
}
