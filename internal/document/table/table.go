// Package table turns rows of text into a styled table layout.
package table

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrNoRows         = errors.New("table has no rows")
	ErrColumnMismatch = errors.New("row does not match column count")
)

// Ellipsis marks text cut to fit a column budget.
const Ellipsis = "..."

// Column describes one table column. Width is in document units.
type Column struct {
	Width float64
	Align Align

	// Header draws the column's body cells with the header style.
	Header bool

	// MaxChars truncates cell text to this many characters. 0 disables.
	MaxChars int
}

type Cell struct {
	Text  string
	Style CellStyle
}

type Row struct {
	Cells  []Cell
	Header bool
}

// Table is a fully resolved layout: every cell carries its final text and
// style, so drawing needs no further decisions.
type Table struct {
	Columns []Column
	Rows    []Row
	Border  Border
	Padding float64
}

// Width is the sum of the column widths.
func (t *Table) Width() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c.Width
	}

	return w
}

// HeaderRow returns the row repeated after a page break.
func (t *Table) HeaderRow() Row {
	return t.Rows[0]
}

// BodyRows returns all rows after the header.
func (t *Table) BodyRows() []Row {
	return t.Rows[1:]
}

// Format builds a Table from rows. The first row is always the header row.
func Format(rows [][]string, columns []Column, style Style) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	t := &Table{
		Columns: columns,
		Rows:    make([]Row, 0, len(rows)),
		Border:  style.Border,
		Padding: style.Padding,
	}

	for i, raw := range rows {
		if len(raw) != len(columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(raw), len(columns), ErrColumnMismatch)
		}

		header := i == 0
		row := Row{Cells: make([]Cell, len(raw)), Header: header}

		for j, text := range raw {
			col := columns[j]
			if !header {
				text = Truncate(text, col.MaxChars)
			}

			row.Cells[j] = Cell{Text: text, Style: resolve(style, col, header)}
		}

		t.Rows = append(t.Rows, row)
	}

	return t, nil
}

// resolve layers body, column and header styles. Later layers win.
func resolve(style Style, col Column, header bool) CellStyle {
	result := CellStyle{Align: AlignLeft}

	merge(&result, style.Body)

	if col.Align != "" {
		result.Align = col.Align
	}

	if header || col.Header {
		merge(&result, style.Header)
	}

	if header && style.Header.Align == "" {
		result.Align = AlignCenter
	}

	return result
}

// Truncate shortens s to at most max runes, ending in Ellipsis when cut.
func Truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	if max <= len(Ellipsis) {
		return string(runes[:max])
	}

	return strings.TrimRight(string(runes[:max-len(Ellipsis)]), " ") + Ellipsis
}
