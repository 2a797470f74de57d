package ascender

import "errors"

var (
	// ErrEmptyPalette is returned when a converter is configured with
	// fewer than two palette characters.
	ErrEmptyPalette = errors.New("palette needs at least two characters")

	// ErrInvalidMinValue is returned for a threshold outside [0, 1].
	ErrInvalidMinValue = errors.New("min value must be within [0, 1]")

	// ErrInvalidGamma is returned for a negative or NaN gamma.
	ErrInvalidGamma = errors.New("gamma must be a non-negative number")

	// ErrInvalidAspectRatio is returned for a non-positive font aspect ratio.
	ErrInvalidAspectRatio = errors.New("aspect ratio must be positive")

	// ErrInvalidWidth is returned when asked for fewer than one column.
	ErrInvalidWidth = errors.New("ascii width must be positive")

	// ErrInvalidFontSize is returned for a non-positive font size.
	ErrInvalidFontSize = errors.New("font size must be positive")

	// ErrNilFont is returned when a bitmap renderer is created without a font.
	ErrNilFont = errors.New("bitmap renderer needs a font")

	// ErrFontFormat is returned when font data cannot be parsed.
	ErrFontFormat = errors.New("unsupported or corrupt font")

	// ErrFontIndex is returned when the requested font is not in the file.
	ErrFontIndex = errors.New("font index out of range")
)
