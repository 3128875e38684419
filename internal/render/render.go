// Package render draws document blocks into paginated PDF files.
package render

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/metrics"
)

// maxGrowHeight caps a growing page. Longer content spills onto further
// pages of this height.
const maxGrowHeight = 3000

const creator = "studiopos"

type Renderer struct {
	log     zerolog.Logger
	metrics *metrics.Metrics
	assets  *assets
}

func New(log zerolog.Logger, m *metrics.Metrics) *Renderer {
	return &Renderer{
		log:     log,
		metrics: m,
		assets:  newAssets(),
	}
}

// Render writes doc into dir, creating dir if needed, and returns the path
// of the written file. The file name depends only on the document, so
// rendering the same record again replaces the earlier file. The file
// appears atomically; a failed render leaves nothing behind.
func (r *Renderer) Render(doc *document.Document, geo Geometry, dir string) (string, error) {
	start := time.Now()

	path, err := r.render(doc, geo, dir)
	r.metrics.ObserveRender(string(doc.Kind), time.Since(start), err)

	if err != nil {
		r.log.Error().Err(err).Str("kind", string(doc.Kind)).Str("key", doc.Key).Msg("render failed")
		return "", err
	}

	r.log.Info().Str("kind", string(doc.Kind)).Str("path", path).Msg("document written")

	return path, nil
}

// Write streams the PDF bytes of doc to w.
func (r *Renderer) Write(w io.Writer, doc *document.Document, geo Geometry) error {
	pdf, err := r.build(doc, geo)
	if err != nil {
		return err
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}

	return nil
}

func (r *Renderer) render(doc *document.Document, geo Geometry, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	var buf bytes.Buffer
	if err := r.Write(&buf, doc, geo); err != nil {
		return "", err
	}

	path := filepath.Join(dir, doc.FileName())

	tmp, err := os.CreateTemp(dir, ".render-*.pdf")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	cleanup := func() { _ = os.Remove(tmp.Name()) }

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		cleanup()

		return "", fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		cleanup()
		return "", fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		cleanup()
		return "", fmt.Errorf("moving file into place: %w", err)
	}

	return path, nil
}

// build draws the document. Growing geometries are drawn twice: once on a
// tall scratch page to measure the content, then on a page cut to fit.
func (r *Renderer) build(doc *document.Document, geo Geometry) (*gofpdf.Fpdf, error) {
	height := geo.Height

	if geo.Grows() {
		probe, err := r.draw(doc, geo, maxGrowHeight)
		if err != nil {
			return nil, err
		}

		height = maxGrowHeight
		if probe.pdf.PageNo() == 1 {
			height = max(probe.pdf.GetY()+geo.Bottom, geo.Width)
		}
	}

	c, err := r.draw(doc, geo, height)
	if err != nil {
		return nil, err
	}

	return c.pdf, nil
}

func (r *Renderer) draw(doc *document.Document, geo Geometry, height float64) (*canvas, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: geo.Width, Ht: height},
	})

	pdf.SetMargins(geo.Left, geo.Top, geo.Right)
	pdf.SetAutoPageBreak(true, geo.Bottom)
	pdf.SetCellMargin(0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.CreatedAt)
	pdf.SetModificationDate(doc.CreatedAt)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator(creator, true)

	if geo.PageNumbers {
		pdf.AliasNbPages("{nb}")
		pdf.SetFooterFunc(func() {
			pdf.SetY(-geo.Bottom + 6)
			pdf.SetFont("Helvetica", "I", 8)
			pdf.SetTextColor(128, 128, 128)
			pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		})
	}

	pdf.AddPage()

	c := &canvas{pdf: pdf, geo: geo, log: r.log, assets: r.assets}
	for _, b := range doc.Blocks {
		c.block(b)

		if pdf.Err() {
			break
		}
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("drawing %s %s: %w", doc.Kind, doc.Key, err)
	}

	return c, nil
}
