package render

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// cp1252 converts UTF-8 text to the single-byte encoding the PDF core fonts
// use. Characters outside the code page become '?'.
func cp1252(s string) string {
	out, err := encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()).String(s)
	if err != nil {
		return s
	}

	return out
}

// ptToMM converts a font size in points to millimetres.
func ptToMM(pt float64) float64 {
	return pt * 25.4 / 72
}

// lineHeight is the leading used for a font size, in millimetres.
func lineHeight(pt float64) float64 {
	return ptToMM(pt) * 1.3
}
