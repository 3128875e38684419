package table

import (
	"fmt"
	"strconv"
	"strings"
)

// Align is a horizontal alignment in gofpdf notation.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// RGB is a color with 0-255 channels.
type RGB struct {
	R, G, B int
}

// Hex parses "#rrggbb".
func Hex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q", s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

// MustHex is Hex for compile-time constants.
func MustHex(s string) RGB {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}

	return c
}

var (
	Black      = RGB{0, 0, 0}
	White      = RGB{255, 255, 255}
	WhiteSmoke = RGB{245, 245, 245}
	Grey       = RGB{128, 128, 128}
	Beige      = RGB{245, 245, 220}
)

// CellStyle describes how a single cell is drawn. Nil colors fall through
// to the next style layer.
type CellStyle struct {
	Fill   *RGB
	Text   *RGB
	Bold   bool
	Italic bool
	Size   float64
	Align  Align
}

// Border is the grid drawn around every cell.
type Border struct {
	Width float64
	Color RGB
}

// Style holds the table-wide styling layers.
type Style struct {
	Header  CellStyle
	Body    CellStyle
	Border  Border
	Padding float64
}

// DefaultStyle is a grey grid with a dark header row.
func DefaultStyle() Style {
	return Style{
		Header: CellStyle{
			Fill: &RGB{63, 81, 181},
			Text: &White,
			Bold: true,
			Size: 10,
		},
		Body: CellStyle{
			Text: &Black,
			Size: 9,
		},
		Border:  Border{Width: 0.2, Color: Grey},
		Padding: 1.5,
	}
}

// merge copies the set fields of src over dst.
func merge(dst *CellStyle, src CellStyle) {
	if src.Fill != nil {
		dst.Fill = src.Fill
	}

	if src.Text != nil {
		dst.Text = src.Text
	}

	if src.Bold {
		dst.Bold = true
	}

	if src.Italic {
		dst.Italic = true
	}

	if src.Size > 0 {
		dst.Size = src.Size
	}

	if src.Align != "" {
		dst.Align = src.Align
	}
}
