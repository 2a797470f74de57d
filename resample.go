package ascender

import (
	"image"
	"math"

	"github.com/ascender/ascender/imageutil"
)

// DefaultAspectRatio is the height-to-width ratio assumed for a character
// cell. Monospace glyphs are about twice as tall as they are wide; the line
// height is compressed to 80% of that so the art reads as a solid block.
const DefaultAspectRatio = 1.6

// AsciiHeight returns the number of rows for an image of the given size
// rendered asciiWidth characters wide. Zero-sized sources give zero rows;
// any other source gives at least one.
func AsciiHeight(srcWidth, srcHeight, asciiWidth int, aspect float64) int {
	if srcWidth <= 0 || srcHeight <= 0 || asciiWidth <= 0 {
		return 0
	}
	h := math.Round(float64(srcHeight) * float64(asciiWidth) / (aspect * float64(srcWidth)))
	return max(int(h), 1)
}

// Resample shrinks img so that each pixel of the result corresponds to one
// character cell. It returns nil for a zero-sized source.
func Resample(img image.Image, asciiWidth int, aspect float64) *imageutil.RGBAImage {
	b := img.Bounds()
	height := AsciiHeight(b.Dx(), b.Dy(), asciiWidth, aspect)
	if height == 0 {
		return nil
	}
	return imageutil.ResizeImage(img, asciiWidth, height, imageutil.InterpolationCatmullRom)
}
