package render

import (
	"github.com/shineart/studiopos/internal/document"
)

// Margins are in millimetres.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Geometry describes the page a document is drawn on. All lengths are in
// millimetres.
type Geometry struct {
	Name   string
	Width  float64
	Height float64 // 0 grows the single page to fit the content
	Margins

	// PageNumbers prints "Page n of m" in the bottom margin.
	PageNumbers bool
}

// Grows reports whether the page height follows the content.
func (g Geometry) Grows() bool {
	return g.Height == 0
}

func (g Geometry) contentWidth() float64 {
	return g.Width - g.Left - g.Right
}

var (
	A4 = Geometry{
		Name:        "A4",
		Width:       210,
		Height:      297,
		Margins:     Margins{Top: 20, Right: 20, Bottom: 20, Left: 20},
		PageNumbers: true,
	}

	// Receipt80 is an 80 mm thermal roll.
	Receipt80 = Geometry{
		Name:    "receipt-80mm",
		Width:   80,
		Margins: Margins{Top: 5, Right: 5, Bottom: 5, Left: 5},
	}
)

// ForKind returns the page geometry a document kind is printed on.
func ForKind(kind document.Kind) Geometry {
	if kind == document.KindBill {
		return Receipt80
	}

	return A4
}
