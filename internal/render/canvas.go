package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/document/table"
)

const (
	fontFamily     = "Helvetica"
	defaultSize    = 10
	gridPadding    = 2
	barcodeDotsMM  = 12
	separatorGap   = 0.8
	statusPadding  = 8
	defaultLineMM  = 0.2
	statusLineMM   = 0.6
	kvRowSpacingMM = 1
)

// canvas draws blocks onto one gofpdf document, top to bottom.
type canvas struct {
	pdf    *gofpdf.Fpdf
	geo    Geometry
	log    zerolog.Logger
	assets *assets
}

func (c *canvas) block(b document.Block) {
	switch b := b.(type) {
	case document.Heading:
		c.heading(b)
	case document.Paragraph:
		c.paragraph(b)
	case document.KeyValue:
		c.keyValue(b)
	case document.TableBlock:
		c.table(b.Table)
	case document.Spacer:
		c.pdf.Ln(b.Height)
	case document.Separator:
		c.separator(b)
	case document.Image:
		c.image(b)
	case document.Status:
		c.status(b)
	case document.Barcode:
		c.barcode(b)
	}

	c.reset()
}

func (c *canvas) reset() {
	c.pdf.SetTextColor(0, 0, 0)
	c.pdf.SetDrawColor(0, 0, 0)
	c.pdf.SetFillColor(255, 255, 255)
	c.pdf.SetLineWidth(defaultLineMM)
	c.pdf.SetDashPattern([]float64{}, 0)
}

// ensure starts a new page when h does not fit below the cursor. Blocks
// taller than a whole page are left to the automatic page break.
func (c *canvas) ensure(h float64) {
	_, pageH := c.pdf.GetPageSize()
	limit := pageH - c.geo.Bottom

	if c.pdf.GetY()+h <= limit {
		return
	}

	if h > pageH-c.geo.Top-c.geo.Bottom {
		return
	}

	c.pdf.AddPage()
}

func (c *canvas) font(bold, italic bool, size float64) {
	style := ""
	if bold {
		style += "B"
	}

	if italic {
		style += "I"
	}

	if size == 0 {
		size = defaultSize
	}

	c.pdf.SetFont(fontFamily, style, size)
}

func (c *canvas) color(rgb *table.RGB) {
	if rgb == nil {
		c.pdf.SetTextColor(0, 0, 0)
		return
	}

	c.pdf.SetTextColor(rgb.R, rgb.G, rgb.B)
}

func (c *canvas) lines(s string, width float64) []string {
	raw := c.pdf.SplitLines([]byte(cp1252(s)), width)
	if len(raw) == 0 {
		return []string{""}
	}

	out := make([]string, len(raw))
	for i, l := range raw {
		out[i] = string(l)
	}

	return out
}

func (c *canvas) heading(h document.Heading) {
	size := h.Size
	if size == 0 {
		size = 16
	}

	c.font(true, false, size)
	c.color(h.Color)

	lh := lineHeight(size)
	lines := c.lines(h.Text, c.geo.contentWidth())
	c.ensure(float64(len(lines)) * lh)

	c.pdf.SetX(c.geo.Left)
	c.pdf.MultiCell(c.geo.contentWidth(), lh, cp1252(h.Text), "", string(align(h.Align)), false)
}

func (c *canvas) paragraph(p document.Paragraph) {
	if p.Text == "" && p.Label == "" {
		return
	}

	lh := lineHeight(orDefault(p.Size))
	width := c.geo.contentWidth() - p.Indent

	if p.Label != "" {
		c.font(true, p.Italic, p.Size)
		c.color(p.Color)
		c.ensure(lh)

		c.pdf.SetX(c.geo.Left + p.Indent)
		c.pdf.Write(lh, cp1252(p.Label+" "))

		c.font(p.Bold, p.Italic, p.Size)
		c.pdf.Write(lh, cp1252(p.Text))
		c.pdf.Ln(lh)

		return
	}

	c.font(p.Bold, p.Italic, p.Size)
	c.color(p.Color)

	lines := c.lines(p.Text, width)
	c.ensure(float64(len(lines)) * lh)

	c.pdf.SetX(c.geo.Left + p.Indent)
	c.pdf.MultiCell(width, lh, cp1252(p.Text), "", string(align(p.Align)), false)
}

func (c *canvas) keyValue(kv document.KeyValue) {
	if len(kv.Pairs) == 0 {
		return
	}

	keyW, valueW := kv.KeyWidth, kv.ValueWidth
	if keyW+valueW == 0 || keyW+valueW > c.geo.contentWidth() {
		keyW = c.geo.contentWidth() * 0.4
		valueW = c.geo.contentWidth() - keyW
	}

	x := c.geo.Left + (c.geo.contentWidth()-keyW-valueW)/2
	size := orDefault(kv.Size)
	lh := lineHeight(size)

	pad := 0.0
	if kv.Grid {
		pad = gridPadding
	}

	keyStyle := func(p document.Pair) table.CellStyle {
		return table.CellStyle{
			Fill:  kv.KeyFill,
			Bold:  p.Bold || kv.KeyFill != nil,
			Size:  size,
			Align: kv.KeyAlign,
		}
	}

	valueStyle := func(p document.Pair) table.CellStyle {
		return table.CellStyle{Bold: p.Bold, Size: size, Align: kv.ValueAlign}
	}

	heights := make([]float64, len(kv.Pairs))

	var total float64
	for i, p := range kv.Pairs {
		k := c.cellHeight(p.Key, keyW, keyStyle(p), pad)
		v := c.cellHeight(p.Value, valueW, valueStyle(p), pad)

		heights[i] = max(k, v, lh+pad*2)
		if !kv.Grid {
			heights[i] += kvRowSpacingMM
		}

		total += heights[i]
	}

	c.ensure(total)

	var border *table.Border
	if kv.Grid {
		border = &table.Border{Width: defaultLineMM, Color: table.Grey}
	}

	for i, p := range kv.Pairs {
		if p.RuleAbove {
			y := c.pdf.GetY()
			c.pdf.SetDrawColor(0, 0, 0)
			c.pdf.SetLineWidth(0.3)
			c.pdf.Line(x, y, x+keyW+valueW, y)
			c.pdf.Ln(kvRowSpacingMM)
		}

		c.ensure(heights[i])

		y := c.pdf.GetY()
		c.cell(x, y, keyW, heights[i], p.Key, keyStyle(p), border, pad)
		c.cell(x+keyW, y, valueW, heights[i], p.Value, valueStyle(p), border, pad)
		c.pdf.SetXY(c.geo.Left, y+heights[i])
	}
}

func (c *canvas) table(t *table.Table) {
	if t == nil || len(t.Rows) == 0 {
		return
	}

	x := c.geo.Left
	if w := t.Width(); w < c.geo.contentWidth() {
		x += (c.geo.contentWidth() - w) / 2
	}

	border := &t.Border
	if t.Border.Width == 0 {
		border = nil
	}

	header := t.HeaderRow()
	headerH := c.rowHeight(t, header)

	first := 0.0
	if body := t.BodyRows(); len(body) > 0 {
		first = c.rowHeight(t, body[0])
	}

	c.ensure(headerH + first)
	c.row(t, header, x, headerH, border)

	_, pageH := c.pdf.GetPageSize()
	limit := pageH - c.geo.Bottom

	for _, r := range t.BodyRows() {
		h := c.rowHeight(t, r)

		if c.pdf.GetY()+h > limit && h+headerH <= pageH-c.geo.Top-c.geo.Bottom {
			c.pdf.AddPage()
			c.row(t, header, x, headerH, border)
		}

		c.row(t, r, x, h, border)
	}
}

func (c *canvas) rowHeight(t *table.Table, r table.Row) float64 {
	var h float64
	for i, cell := range r.Cells {
		h = max(h, c.cellHeight(cell.Text, t.Columns[i].Width, cell.Style, t.Padding))
	}

	return h
}

func (c *canvas) row(t *table.Table, r table.Row, x, h float64, border *table.Border) {
	y := c.pdf.GetY()

	for i, cell := range r.Cells {
		w := t.Columns[i].Width
		c.cell(x, y, w, h, cell.Text, cell.Style, border, t.Padding)
		x += w
	}

	c.pdf.SetXY(c.geo.Left, y+h)
}

func (c *canvas) cellHeight(text string, w float64, style table.CellStyle, pad float64) float64 {
	c.font(style.Bold, style.Italic, style.Size)
	n := len(c.lines(text, w-pad*2))

	return float64(n)*lineHeight(orDefault(style.Size)) + pad*2
}

// cell draws a box of w by h at (x, y) with text vertically centered.
func (c *canvas) cell(x, y, w, h float64, text string, style table.CellStyle, border *table.Border, pad float64) {
	if style.Fill != nil {
		c.pdf.SetFillColor(style.Fill.R, style.Fill.G, style.Fill.B)
		c.pdf.Rect(x, y, w, h, "F")
	}

	if border != nil {
		c.pdf.SetLineWidth(border.Width)
		c.pdf.SetDrawColor(border.Color.R, border.Color.G, border.Color.B)
		c.pdf.Rect(x, y, w, h, "D")
	}

	c.font(style.Bold, style.Italic, style.Size)
	c.color(style.Text)

	lh := lineHeight(orDefault(style.Size))
	lines := c.lines(text, w-pad*2)
	top := y + (h-float64(len(lines))*lh)/2

	for i, l := range lines {
		c.pdf.SetXY(x+pad, top+float64(i)*lh)
		c.pdf.CellFormat(w-pad*2, lh, l, "", 0, string(align(style.Align)), false, 0, "")
	}
}

func (c *canvas) separator(s document.Separator) {
	c.ensure(separatorGap * 2)

	y := c.pdf.GetY()
	x1, x2 := c.geo.Left, c.geo.Width-c.geo.Right

	c.pdf.SetDrawColor(0, 0, 0)

	if s.Double {
		c.pdf.SetLineWidth(0.3)
		c.pdf.Line(x1, y, x2, y)
		c.pdf.Line(x1, y+separatorGap, x2, y+separatorGap)
	} else {
		c.pdf.SetLineWidth(defaultLineMM)
		c.pdf.SetDashPattern([]float64{1, 1}, 0)
		c.pdf.Line(x1, y, x2, y)
	}

	c.pdf.SetY(y + separatorGap*2)
}

func (c *canvas) status(s document.Status) {
	size := orDefault(s.Size)

	c.font(true, false, size)
	c.pdf.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
	c.pdf.SetDrawColor(s.Color.R, s.Color.G, s.Color.B)
	c.pdf.SetLineWidth(statusLineMM)

	text := cp1252(s.Text)
	w := min(c.pdf.GetStringWidth(text)+statusPadding*2, c.geo.contentWidth())
	h := lineHeight(size) + 4

	c.ensure(h)
	c.pdf.SetX(c.geo.Left + (c.geo.contentWidth()-w)/2)
	c.pdf.CellFormat(w, h, text, "1", 1, "C", false, 0, "")
}

func (c *canvas) image(img document.Image) {
	data, err := c.assets.logo(img.Path, img.Grayscale)
	if err != nil {
		c.log.Warn().Err(err).Str("path", img.Path).Msg("skipping image")
		return
	}

	name := fmt.Sprintf("image:%s:%t", img.Path, img.Grayscale)
	c.place(name, data, img.Width, img.Height)
}

func (c *canvas) barcode(b document.Barcode) {
	w := min(b.Width, c.geo.contentWidth())

	data, err := code128PNG(b.Value, int(w*barcodeDotsMM), int(b.Height*barcodeDotsMM))
	if err != nil {
		c.log.Warn().Err(err).Str("value", b.Value).Msg("skipping barcode")
		return
	}

	c.place("barcode:"+b.Value, data, w, b.Height)
}

// place draws a PNG centered, scaled to fit within w by h.
func (c *canvas) place(name string, data []byte, w, h float64) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	info := c.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if info == nil || c.pdf.Err() {
		return
	}

	iw, ih := info.Width(), info.Height()
	if iw > 0 && ih > 0 {
		scale := min(w/iw, h/ih)
		w, h = iw*scale, ih*scale
	}

	c.ensure(h)

	x := c.geo.Left + (c.geo.contentWidth()-w)/2
	y := c.pdf.GetY()

	c.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	c.pdf.SetY(y + h)
}

func align(a table.Align) table.Align {
	if a == "" {
		return table.AlignLeft
	}

	return a
}

func orDefault(size float64) float64 {
	if size == 0 {
		return defaultSize
	}

	return size
}
