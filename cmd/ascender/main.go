// Command ascender prints an image as colored ASCII art and optionally
// saves a bitmap rendering of the same art.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	flag "github.com/spf13/pflag"

	"github.com/ascender/ascender"
	"github.com/ascender/ascender/imageutil"
)

type options struct {
	input      string
	output     string
	palette    string
	minValue   float64
	gamma      float64
	charGamma  float64
	aspect     float64
	font       string
	fontIndex  int
	asciiWidth int
	fontHeight float64
	plain      bool
	verbose    bool

	changed func(name string) bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("ascender", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ascender [flags] FILE [OUTPUT]\n\n")
		fmt.Fprintf(stderr, "Prints FILE as ASCII art. If OUTPUT is given, the art is also\n"+
			"rendered with --font and saved there; the format follows the extension.\n\n")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVarP(&opts.palette, "palette", "p", ascender.DefaultPalette,
		"Characters to use, from least to most ink")
	fs.Float64VarP(&opts.minValue, "min-value", "m", ascender.DefaultMinValue,
		"Brightness below which a character is drawn black")
	fs.Float64VarP(&opts.gamma, "gamma", "g", ascender.DefaultGamma,
		"Exponent applied to the brightness of the output colors")
	fs.Float64Var(&opts.charGamma, "char-gamma", ascender.DefaultCharGamma,
		"Exponent applied to the brightness before picking a character")
	fs.Float64Var(&opts.aspect, "aspect", ascender.DefaultAspectRatio,
		"Height-to-width ratio of a character cell")
	fs.StringVarP(&opts.font, "font", "f", "",
		"Path to a .ttf, .otf or .ttc font (required with OUTPUT)")
	fs.IntVarP(&opts.fontIndex, "font-index", "i", 0,
		"Font to use inside a font collection")
	fs.IntVarP(&opts.asciiWidth, "ascii-width", "w", 60,
		"How many characters wide to make the art")
	fs.Float64VarP(&opts.fontHeight, "font-height", "h", 10.0,
		"Font size of the output image, in pixels")
	fs.BoolVar(&opts.plain, "plain", false,
		"Print characters without color")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Print timing information to stderr")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	switch fs.NArg() {
	case 1:
	case 2:
		opts.output = fs.Arg(1)
	default:
		fs.Usage()
		return nil, errors.New("expected an input image and an optional output path")
	}
	opts.input = fs.Arg(0)
	opts.changed = fs.Changed
	return opts, nil
}

// converterOptions turns the flags the user actually set into converter
// options so that unset flags keep the library defaults.
func (o *options) converterOptions() []ascender.ConverterOption {
	var opts []ascender.ConverterOption
	if o.changed("palette") {
		opts = append(opts, ascender.WithPalette(o.palette))
	}
	if o.changed("min-value") {
		opts = append(opts, ascender.WithMinValue(o.minValue))
	}
	if o.changed("gamma") {
		opts = append(opts, ascender.WithGamma(o.gamma))
	}
	if o.changed("char-gamma") {
		opts = append(opts, ascender.WithCharGamma(o.charGamma))
	}
	if o.changed("aspect") {
		opts = append(opts, ascender.WithAspectRatio(o.aspect))
	}
	return opts
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	converter, err := ascender.NewConverter(opts.converterOptions()...)
	if err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	// Load the font up front so a bad font fails before any output.
	var renderer *ascender.BitmapRenderer
	if opts.output != "" {
		if opts.font == "" {
			return errors.New("a font (-f/--font) is required to render an image")
		}
		renderer, err = ascender.LoadBitmapRenderer(opts.font, opts.fontIndex, opts.fontHeight)
		if err != nil {
			return fmt.Errorf("error loading font: %w", err)
		}
		if opts.verbose {
			fmt.Fprintf(stderr, "Font: %s\n", renderer.Font().Name())
		}
	}

	begin := time.Now()
	img, err := imageutil.LoadImage(opts.input)
	if err != nil {
		return fmt.Errorf("error loading image: %w", err)
	}
	loaded := time.Now()

	grid, err := converter.ToChaxels(img, opts.asciiWidth)
	if err != nil {
		return err
	}
	converted := time.Now()

	if opts.plain || termenv.EnvNoColor() {
		fmt.Fprint(stdout, ascender.ToPlainText(grid))
	} else {
		fmt.Fprint(stdout, ascender.ToTerminal256(grid))
	}

	if opts.verbose {
		fmt.Fprintf(stderr, "Image: %dx%d, load time: %v\n",
			img.Width(), img.Height(), loaded.Sub(begin))
		fmt.Fprintf(stderr, "Grid: %dx%d, conversion time: %v\n",
			grid.Cols(), grid.Rows(), converted.Sub(loaded))
	}

	if renderer == nil {
		return nil
	}
	bitmap, err := renderer.Render(grid)
	if err != nil {
		return fmt.Errorf("error rendering image: %w", err)
	}
	if err := imageutil.SaveImage(bitmap, opts.output); err != nil {
		return fmt.Errorf("error writing image: %w", err)
	}
	if opts.verbose {
		fmt.Fprintf(stderr, "Bitmap: %dx%d written to %s, render time: %v\n",
			bitmap.Bounds().Dx(), bitmap.Bounds().Dy(), opts.output, time.Since(converted))
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
