// Package document turns studio records into an ordered list of layout
// blocks. It never touches the filesystem.
package document

import (
	"strings"
	"time"
	"unicode"
)

// Kind identifies the document family. It decides the output folder, the
// file name and the page geometry.
type Kind string

const (
	KindBill        Kind = "bill"
	KindInvoice     Kind = "invoice"
	KindBooking     Kind = "booking"
	KindStaffReport Kind = "staff_report"
)

// Document is a built, render-ready document.
type Document struct {
	Kind  Kind
	Key   string
	Title string

	// CreatedAt is stamped into the PDF metadata so that rendering the same
	// record twice yields the same bytes.
	CreatedAt time.Time

	Blocks []Block
}

// FileName is the deterministic output file name for the document.
func (d *Document) FileName() string {
	key := SafeName(d.Key)

	switch d.Kind {
	case KindBill:
		return "BILL_" + key + ".pdf"
	case KindBooking:
		return "Booking_" + key + ".pdf"
	case KindStaffReport:
		return "Staff_Report_" + key + ".pdf"
	}

	return key + ".pdf"
}

// SafeName maps anything that is not a letter, digit, dash or underscore to
// an underscore.
func SafeName(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}

		return '_'
	}, strings.TrimSpace(s))
}

func (d *Document) add(blocks ...Block) {
	d.Blocks = append(d.Blocks, blocks...)
}
