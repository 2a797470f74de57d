package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Interpolation specifies the interpolation method for resizing.
type Interpolation int

const (
	// InterpolationCatmullRom uses the Catmull-Rom cubic kernel. It keeps
	// the average brightness of each destination cell close to the source,
	// which is what character selection depends on.
	InterpolationCatmullRom Interpolation = iota

	// InterpolationLinear uses bilinear interpolation.
	InterpolationLinear

	// InterpolationNearest uses nearest-neighbor interpolation.
	// Fastest but lowest quality.
	InterpolationNearest
)

func (interp Interpolation) scaler() draw.Scaler {
	switch interp {
	case InterpolationLinear:
		return draw.BiLinear
	case InterpolationNearest:
		return draw.NearestNeighbor
	default:
		return draw.CatmullRom
	}
}

// Resize resizes an RGBA image to the specified dimensions using the
// given interpolation method. A zero or negative target dimension yields
// an empty image.
func Resize(img *RGBAImage, width, height int, interp Interpolation) *RGBAImage {
	if width <= 0 || height <= 0 {
		return NewRGBAImage(0, 0)
	}
	dst := NewRGBAImage(width, height)
	if img.Empty() {
		return dst
	}
	interp.scaler().Scale(dst.RGBA, dst.Bounds(), img.RGBA, img.Bounds(), draw.Src, nil)
	return dst
}

// ResizeImage converts img to an RGBAImage and resizes it.
func ResizeImage(img image.Image, width, height int, interp Interpolation) *RGBAImage {
	return Resize(RGBAImageFromImage(img), width, height, interp)
}
