package ascender

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/ascender/ascender/imageutil"
)

// DefaultPalette orders characters from least ink to most ink, so dark
// pixels map to sparse glyphs.
const DefaultPalette = ".:;noxdKXM@"

const (
	// DefaultMinValue is the brightness below which a chaxel is drawn black.
	DefaultMinValue = 0.05
	// DefaultGamma is the exponent applied to the retained brightness.
	DefaultGamma = 0.5
	// DefaultCharGamma leaves character selection on the raw brightness.
	DefaultCharGamma = 1.0
)

// Converter turns images into chaxel grids. A Converter is read-only once
// built and may be shared between goroutines.
type Converter struct {
	palette     []rune
	minValue    float64
	gamma       float64
	charGamma   float64
	aspectRatio float64
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// WithPalette sets the characters to use, least ink first.
func WithPalette(palette string) ConverterOption {
	return WithPaletteRunes([]rune(palette))
}

// WithPaletteRunes sets the characters to use, least ink first.
func WithPaletteRunes(palette []rune) ConverterOption {
	return func(c *Converter) {
		c.palette = append([]rune(nil), palette...)
	}
}

// WithMinValue sets the brightness threshold. Pixels strictly darker than
// it are drawn black.
func WithMinValue(v float64) ConverterOption {
	return func(c *Converter) {
		c.minValue = v
	}
}

// WithGamma sets the exponent applied to the brightness of retained colors.
func WithGamma(gamma float64) ConverterOption {
	return func(c *Converter) {
		c.gamma = gamma
	}
}

// WithCharGamma sets the exponent applied to the brightness before it is
// used to pick a character. 1.0 picks on the raw brightness.
func WithCharGamma(gamma float64) ConverterOption {
	return func(c *Converter) {
		c.charGamma = gamma
	}
}

// WithAspectRatio sets the height-to-width ratio of a character cell.
func WithAspectRatio(ratio float64) ConverterOption {
	return func(c *Converter) {
		c.aspectRatio = ratio
	}
}

// NewConverter creates a Converter with the given options applied over the
// defaults: DefaultPalette, DefaultMinValue, DefaultGamma, DefaultCharGamma
// and DefaultAspectRatio.
func NewConverter(opts ...ConverterOption) (*Converter, error) {
	c := &Converter{
		palette:     []rune(DefaultPalette),
		minValue:    DefaultMinValue,
		gamma:       DefaultGamma,
		charGamma:   DefaultCharGamma,
		aspectRatio: DefaultAspectRatio,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// DefaultConverter returns a Converter with the default settings.
func DefaultConverter() *Converter {
	c, err := NewConverter()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Converter) validate() error {
	if len(c.palette) < 2 {
		return ErrEmptyPalette
	}
	if math.IsNaN(c.minValue) || c.minValue < 0 || c.minValue > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidMinValue, c.minValue)
	}
	if math.IsNaN(c.gamma) || math.IsInf(c.gamma, 0) || c.gamma < 0 {
		return fmt.Errorf("%w: gamma %v", ErrInvalidGamma, c.gamma)
	}
	if math.IsNaN(c.charGamma) || math.IsInf(c.charGamma, 0) || c.charGamma <= 0 {
		return fmt.Errorf("%w: char gamma %v", ErrInvalidGamma, c.charGamma)
	}
	if math.IsNaN(c.aspectRatio) || math.IsInf(c.aspectRatio, 0) || c.aspectRatio <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidAspectRatio, c.aspectRatio)
	}
	return nil
}

// Palette returns a copy of the configured characters.
func (c *Converter) Palette() []rune {
	return append([]rune(nil), c.palette...)
}

// MinValue returns the brightness threshold.
func (c *Converter) MinValue() float64 { return c.minValue }

// Gamma returns the color gamma.
func (c *Converter) Gamma() float64 { return c.gamma }

// CharGamma returns the character selection gamma.
func (c *Converter) CharGamma() float64 { return c.charGamma }

// AspectRatio returns the character cell aspect ratio.
func (c *Converter) AspectRatio() float64 { return c.aspectRatio }

// ToChaxels converts img into a grid asciiWidth characters wide. The
// number of rows follows from the image's aspect ratio and the converter's
// cell aspect ratio. A zero-sized image gives an empty grid.
func (c *Converter) ToChaxels(img image.Image, asciiWidth int) (Grid, error) {
	if asciiWidth <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, asciiWidth)
	}
	resized := Resample(img, asciiWidth, c.aspectRatio)
	if resized == nil {
		return Grid{}, nil
	}

	grid := make(Grid, resized.Height())
	for y := range grid {
		row := make([]Chaxel, resized.Width())
		for x := range row {
			row[x] = c.chaxelForRGB(resized.GetRGB(x, y))
		}
		grid[y] = row
	}
	return grid, nil
}

// PixelToChaxel converts a single color to its chaxel. It applies the
// threshold and gamma correction but no clustering of any kind.
func (c *Converter) PixelToChaxel(col color.Color) Chaxel {
	return c.chaxelForRGB(imageutil.RGBFromColor(col))
}

func (c *Converter) chaxelForRGB(px imageutil.RGB) Chaxel {
	fg := HSVFromRGB(px.R, px.G, px.B)
	return Chaxel{
		Char: c.CharacterForValue(fg.V),
		FG:   c.AdjustColor(fg),
	}
}

// CharacterForValue picks the palette character for a brightness in [0, 1].
func (c *Converter) CharacterForValue(value float64) rune {
	if c.charGamma != 1 {
		value = math.Pow(value, c.charGamma)
	}
	last := len(c.palette) - 1
	index := int(math.Round(value * float64(last)))
	return c.palette[min(max(index, 0), last)]
}

// AdjustColor applies the threshold and gamma to the color's value,
// leaving hue and saturation alone.
func (c *Converter) AdjustColor(fg HSV) HSV {
	if fg.V < c.minValue {
		return fg.WithValue(0)
	}
	return fg.WithValue(math.Pow(fg.V, c.gamma))
}
