package ascender

import (
	"bytes"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// fontDPI makes the font size passed to NewFace a size in pixels.
const fontDPI = 72

// Font is a parsed outline font. TrueType outlines are handled by
// freetype; collections and CFF-flavored OpenType fonts by x/image's
// opentype package. A Font is immutable and may be shared between
// goroutines; faces made from it may not.
type Font struct {
	tt *truetype.Font
	ot *opentype.Font
}

// LoadFont reads the font file at path. index selects a font inside a
// collection (.ttc/.otc); for a single-font file it must be 0.
func LoadFont(path string, index int) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}
	f, err := ParseFont(data, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// ParseFont parses font data. See LoadFont for the meaning of index.
func ParseFont(data []byte, index int) (*Font, error) {
	if bytes.HasPrefix(data, []byte("ttcf")) {
		return parseCollection(data, index)
	}
	if index != 0 {
		return nil, fmt.Errorf("%w: index %d requested from a single-font file", ErrFontIndex, index)
	}

	tt, ttErr := truetype.Parse(data)
	if ttErr == nil {
		return &Font{tt: tt}, nil
	}
	// freetype only reads TrueType outlines.
	ot, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFormat, ttErr)
	}
	return &Font{ot: ot}, nil
}

func parseCollection(data []byte, index int) (*Font, error) {
	coll, err := opentype.ParseCollection(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFormat, err)
	}
	if index < 0 || index >= coll.NumFonts() {
		return nil, fmt.Errorf("%w: index %d, collection holds %d fonts",
			ErrFontIndex, index, coll.NumFonts())
	}
	ot, err := coll.Font(index)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFontFormat, err)
	}
	return &Font{ot: ot}, nil
}

// Name returns the full name recorded in the font, if any.
func (f *Font) Name() string {
	if f.tt != nil {
		return f.tt.Name(truetype.NameIDFontFullName)
	}
	name, err := f.ot.Name(nil, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// NewFace returns a face that draws the font size pixels per em.
// The caller owns the face and should Close it.
func (f *Font) NewFace(size float64) (font.Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFontSize, size)
	}
	if f.tt != nil {
		return truetype.NewFace(f.tt, &truetype.Options{
			Size:    size,
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		}), nil
	}
	return opentype.NewFace(f.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}
