package document

import (
	"github.com/shineart/studiopos/internal/document/table"
)

var (
	brandBlue  = table.MustHex("#1f538d")
	paidGreen  = table.MustHex("#1e8449")
	dueRed     = table.MustHex("#c0392b")
	lightGrey  = table.MustHex("#f0f0f0")
	summaryBg  = table.MustHex("#f9f9f9")
	invoiceHdr = table.MustHex("#27ae60")
	invoiceBg  = table.MustHex("#e8f5e9")
	bookingHdr = table.MustHex("#3498db")
	bookingBg  = table.MustHex("#e3f2fd")
	custHdr    = table.MustHex("#9b59b6")
	custBg     = table.MustHex("#f3e5f5")
)

// A4 text sizes, in points.
const (
	titleSize   = 24
	sectionSize = 14
	bodySize    = 10
)

func title(s string) Heading {
	return Heading{Text: s, Size: titleSize, Align: table.AlignCenter, Color: &brandBlue}
}

func section(s string) Heading {
	return Heading{Text: s, Size: sectionSize, Align: table.AlignLeft, Color: &brandBlue}
}

func labeled(label, value string) Paragraph {
	return Paragraph{Label: label, Text: value, Size: bodySize, Align: table.AlignLeft}
}

func subtitle(s string, grey bool) Paragraph {
	p := Paragraph{Text: s, Size: 12, Align: table.AlignCenter}
	if grey {
		p.Color = &table.Grey
	}

	return p
}

func footer(s string, size float64) Paragraph {
	return Paragraph{Text: s, Size: size, Align: table.AlignCenter, Color: &table.Grey}
}

// gridStyle is the shared look of A4 data tables: bold whitesmoke header
// text on a colored band, flat body shading and a thin grey grid.
func gridStyle(header, body table.RGB) table.Style {
	return table.Style{
		Header: table.CellStyle{
			Fill: &header,
			Text: &table.WhiteSmoke,
			Bold: true,
			Size: 10,
		},
		Body: table.CellStyle{
			Fill: &body,
			Text: &table.Black,
			Size: 9,
		},
		Border:  table.Border{Width: 0.2, Color: table.Grey},
		Padding: 2,
	}
}
