package ascender

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// BitmapRenderer rasterizes chaxel grids with an outline font. Each glyph
// is tinted with its chaxel's color, and anti-aliased edges fade toward
// black rather than being blended with a background.
//
// The image width is taken from the first row only. Grids are expected to
// be uniform; rows that lay out wider or narrower than the first are
// clipped or leave a black margin.
type BitmapRenderer struct {
	font *Font
	size float64
}

// NewBitmapRenderer returns a renderer drawing f at size pixels per em.
func NewBitmapRenderer(f *Font, size float64) (*BitmapRenderer, error) {
	if f == nil {
		return nil, ErrNilFont
	}
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontSize, size)
	}
	return &BitmapRenderer{font: f, size: size}, nil
}

// LoadBitmapRenderer loads the font at path (see LoadFont) and returns a
// renderer for it.
func LoadBitmapRenderer(path string, index int, size float64) (*BitmapRenderer, error) {
	f, err := LoadFont(path, index)
	if err != nil {
		return nil, err
	}
	return NewBitmapRenderer(f, size)
}

// Font returns the renderer's font.
func (r *BitmapRenderer) Font() *Font {
	return r.font
}

// LineHeight returns the distance between the baselines of successive rows.
func (r *BitmapRenderer) LineHeight() (fixed.Int26_6, error) {
	face, err := r.font.NewFace(r.size)
	if err != nil {
		return 0, err
	}
	defer face.Close()
	return lineHeight(face), nil
}

// Bounds returns the size of the image Render would produce for grid.
func (r *BitmapRenderer) Bounds(grid Grid) (image.Rectangle, error) {
	if grid.Empty() {
		return image.Rectangle{}, nil
	}
	face, err := r.font.NewFace(r.size)
	if err != nil {
		return image.Rectangle{}, err
	}
	defer face.Close()
	return bounds(face, grid), nil
}

// Render draws grid onto a new black image sized to fit it. An empty grid
// gives an empty image.
func (r *BitmapRenderer) Render(grid Grid) (*image.RGBA, error) {
	if grid.Empty() {
		return image.NewRGBA(image.Rectangle{}), nil
	}
	face, err := r.font.NewFace(r.size)
	if err != nil {
		return nil, err
	}
	defer face.Close()

	img := image.NewRGBA(bounds(face, grid))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	renderGrid(face, grid, img)
	return img, nil
}

// RenderTo draws grid onto dst, starting at dst's origin. Glyph pixels
// falling outside dst are dropped.
func (r *BitmapRenderer) RenderTo(grid Grid, dst draw.Image) error {
	face, err := r.font.NewFace(r.size)
	if err != nil {
		return err
	}
	defer face.Close()
	renderGrid(face, grid, dst)
	return nil
}

func lineHeight(face font.Face) fixed.Int26_6 {
	m := face.Metrics()
	// Descent is a positive distance below the baseline.
	return m.Ascent + m.Descent
}

func bounds(face font.Face, grid Grid) image.Rectangle {
	width := layoutRow(face, grid[0], 0, nil)
	height := lineHeight(face).Ceil() * grid.Rows()
	return image.Rect(0, 0, width.Ceil(), height)
}

// layoutRow advances a dot along row, calling place for every chaxel with
// the dot its glyph should be drawn at, and returns the final x position.
func layoutRow(face font.Face, row []Chaxel, baseline fixed.Int26_6,
	place func(c Chaxel, dot fixed.Point26_6)) fixed.Int26_6 {
	dot := fixed.Point26_6{Y: baseline}
	prev := rune(-1)
	for _, c := range row {
		if prev >= 0 {
			dot.X += face.Kern(prev, c.Char)
		}
		if place != nil {
			place(c, dot)
		}
		advance, _ := face.GlyphAdvance(c.Char)
		dot.X += advance
		prev = c.Char
	}
	return dot.X
}

func renderGrid(face font.Face, grid Grid, dst draw.Image) {
	ascent := face.Metrics().Ascent
	lh := lineHeight(face)
	origin := dst.Bounds().Min
	for y, row := range grid {
		baseline := ascent + lh*fixed.Int26_6(y)
		layoutRow(face, row, baseline, func(c Chaxel, dot fixed.Point26_6) {
			drawGlyph(face, c, dot, origin, dst)
		})
	}
}

// drawGlyph composites one glyph. A pixel with coverage v gets the chaxel
// color darkened by (1-v)*V, which leaves it at value v*V.
func drawGlyph(face font.Face, c Chaxel, dot fixed.Point26_6, origin image.Point, dst draw.Image) {
	dr, mask, maskp, _, ok := face.Glyph(dot, c.Char)
	if !ok || dr.Empty() {
		return
	}
	clip := dst.Bounds()
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			p := image.Point{X: x, Y: y}.Add(origin)
			if !p.In(clip) {
				continue
			}
			_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
			if a == 0 {
				continue
			}
			v := float64(a) / 0xffff
			dst.Set(p.X, p.Y, c.FG.WithValue(c.FG.V-(1-v)*c.FG.V).Color())
		}
	}
}
