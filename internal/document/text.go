package document

import (
	"strings"
)

// receiptRuleWidth is the character width of receipt separator lines.
const receiptRuleWidth = 40

// PlainText renders the document as lines of text, one per visible line of
// the PDF. Images and barcodes are left out.
func (d *Document) PlainText() []string {
	var lines []string

	for _, b := range d.Blocks {
		switch b := b.(type) {
		case Heading:
			lines = append(lines, b.Text)
		case Paragraph:
			if b.Label != "" {
				lines = append(lines, b.Label+" "+b.Text)
				continue
			}

			lines = append(lines, b.Text)
		case KeyValue:
			for _, p := range b.Pairs {
				lines = append(lines, p.Key+" "+p.Value)
			}
		case TableBlock:
			for _, row := range b.Table.Rows {
				cells := make([]string, len(row.Cells))
				for i, c := range row.Cells {
					cells[i] = c.Text
				}

				lines = append(lines, strings.Join(cells, " | "))
			}
		case Separator:
			ch := "-"
			if b.Double {
				ch = "="
			}

			lines = append(lines, strings.Repeat(ch, receiptRuleWidth))
		case Status:
			lines = append(lines, b.Text)
		}
	}

	return lines
}

// String joins PlainText with newlines.
func (d *Document) String() string {
	return strings.Join(d.PlainText(), "\n")
}
