package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/ascender/ascender"
	"github.com/ascender/ascender/imageutil"
)

// writeFixtures writes a 40x30 color bars PNG and the Go Mono font into a
// temporary directory.
func writeFixtures(t *testing.T) (dir, input, fontPath string) {
	t.Helper()
	dir = t.TempDir()
	input = filepath.Join(dir, "bars.png")
	if err := imageutil.SavePNG(imageutil.CreateColorBarsImage(40, 30), input); err != nil {
		t.Fatal(err)
	}
	fontPath = filepath.Join(dir, "gomono.ttf")
	if err := os.WriteFile(fontPath, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	return dir, input, fontPath
}

func enableColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
}

func TestRunTerminalOnly(t *testing.T) {
	enableColor(t)
	_, input, _ := writeFixtures(t)

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-w", "8", input}, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	wantRows := ascender.AsciiHeight(40, 30, 8, ascender.DefaultAspectRatio)
	if len(lines) != wantRows {
		t.Errorf("Expected %d lines, got %d", wantRows, len(lines))
	}
	if !strings.Contains(stdout.String(), "\x1b[38;5;") {
		t.Error("Expected 256-color escapes in the output")
	}
	if stderr.Len() != 0 {
		t.Errorf("Expected no stderr output, got %q", stderr.String())
	}
}

func TestRunPlain(t *testing.T) {
	_, input, _ := writeFixtures(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"--plain", "-w", "8", "-p", " #", input}, &stdout, &stderr)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if strings.Contains(stdout.String(), "\x1b") {
		t.Error("Plain output should not contain escapes")
	}
	for _, line := range strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n") {
		if len(line) != 8 {
			t.Errorf("Expected 8 characters per line, got %q", line)
		}
		if strings.Trim(line, " #") != "" {
			t.Errorf("Line uses characters outside the palette: %q", line)
		}
	}
}

func TestRunBitmapOutput(t *testing.T) {
	dir, input, fontPath := writeFixtures(t)
	output := filepath.Join(dir, "art.png")

	var stdout, stderr bytes.Buffer
	args := []string{"-v", "-w", "10", "-h", "12", "-f", fontPath, input, output}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	img, err := imageutil.LoadImage(output)
	if err != nil {
		t.Fatalf("Output image unreadable: %v", err)
	}
	if img.Empty() {
		t.Error("Output image should not be empty")
	}
	if !strings.Contains(stderr.String(), "Bitmap:") {
		t.Errorf("Verbose mode should report the bitmap, got %q", stderr.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir, input, fontPath := writeFixtures(t)
	output := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{"no arguments", []string{}, nil},
		{"too many arguments", []string{input, output, "extra"}, nil},
		{"missing image", []string{filepath.Join(dir, "nope.png")}, os.ErrNotExist},
		{"output without font", []string{input, output}, nil},
		{"missing font", []string{"-f", filepath.Join(dir, "nope.ttf"), input, output}, os.ErrNotExist},
		{"bad font index", []string{"-f", fontPath, "-i", "3", input, output}, ascender.ErrFontIndex},
		{"bad palette", []string{"-p", "@", input}, ascender.ErrEmptyPalette},
		{"bad gamma", []string{"-g", "-2", input}, ascender.ErrInvalidGamma},
		{"bad width", []string{"-w", "0", input}, ascender.ErrInvalidWidth},
		{"unknown flag", []string{"--bogus", input}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(tt.args, &stdout, &stderr)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("Expected %v, got %v", tt.is, err)
			}
		})
	}

	if _, err := os.Stat(output); !errors.Is(err, os.ErrNotExist) {
		t.Error("Failed runs should not leave an output image behind")
	}
}

func TestConverterOptionsOnlyChangedFlags(t *testing.T) {
	opts, err := parseArgs([]string{"-g", "0.75", "in.png"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	c, err := ascender.NewConverter(opts.converterOptions()...)
	if err != nil {
		t.Fatal(err)
	}
	if c.Gamma() != 0.75 {
		t.Errorf("Expected gamma 0.75, got %v", c.Gamma())
	}
	if c.MinValue() != ascender.DefaultMinValue || string(c.Palette()) != ascender.DefaultPalette {
		t.Error("Unset flags should keep the defaults")
	}
}
