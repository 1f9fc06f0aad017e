package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"halo-life/pkg/core"
)

// Palette maps Dead to black and Alive to white.
var Palette = color.Palette{color.Black, color.White}

// Bitmap renders g as a two-colour paletted image, one pixel per cell, with
// width = columns and height = rows.
func Bitmap(g *core.Grid) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, g.Cols(), g.Rows()), Palette)
	for r := 0; r < g.Rows(); r++ {
		copy(img.Pix[r*img.Stride:], g.Row(r))
	}
	return img
}

// Format selects an image encoding.
type Format string

const (
	// FormatBMP writes Windows bitmaps.
	FormatBMP Format = "bmp"
	// FormatPNG writes PNG, which stores two-colour palettes at one bit per pixel.
	FormatPNG Format = "png"
)

// FormatFor picks the encoding from a file extension.
func FormatFor(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".bmp":
		return FormatBMP, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
}

// Encode writes the bitmap of g to w.
func Encode(w io.Writer, g *core.Grid, f Format) error {
	img := Bitmap(g)
	switch f {
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatPNG:
		return png.Encode(w, img)
	default:
		return fmt.Errorf("unsupported image format %q", f)
	}
}

// Save encodes g to path using the format implied by its extension.
func Save(path string, g *core.Grid) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(out, g, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
