package document

import (
	"github.com/shineart/studiopos/internal/document/table"
)

// Block is one layout unit. The renderer never splits a block across pages
// unless it is taller than a page.
type Block interface {
	block()
}

type Heading struct {
	Text  string
	Size  float64
	Align table.Align
	Color *table.RGB
}

// Paragraph is a run of text. A non-empty Label is printed bold before Text.
type Paragraph struct {
	Label  string
	Text   string
	Size   float64
	Bold   bool
	Italic bool
	Align  table.Align
	Color  *table.RGB
	Indent float64
}

// Pair is one key/value row.
type Pair struct {
	Key       string
	Value     string
	Bold      bool
	RuleAbove bool
}

// KeyValue lays pairs out in two columns.
type KeyValue struct {
	Pairs      []Pair
	KeyWidth   float64
	ValueWidth float64
	KeyAlign   table.Align
	ValueAlign table.Align
	Size       float64

	// Grid draws cell borders; KeyFill shades the key column.
	Grid    bool
	KeyFill *table.RGB
}

type TableBlock struct {
	Table *table.Table
}

type Spacer struct {
	Height float64
}

// Separator is a full-width rule, the receipt's "=====" or "-----" line.
type Separator struct {
	Double bool
}

// Image is a decorative picture. A missing file is skipped, not an error.
type Image struct {
	Path      string
	Width     float64
	Height    float64
	Grayscale bool
}

// Status is the payment state banner.
type Status struct {
	Text  string
	Paid  bool
	Size  float64
	Color table.RGB
}

// Barcode is a Code 128 strip encoding Value.
type Barcode struct {
	Value  string
	Width  float64
	Height float64
}

func (Heading) block()    {}
func (Paragraph) block()  {}
func (KeyValue) block()   {}
func (TableBlock) block() {}
func (Spacer) block()     {}
func (Separator) block()  {}
func (Image) block()      {}
func (Status) block()     {}
func (Barcode) block()    {}
