// Package generator turns stored records into PDF files on disk.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/render"
	"github.com/shineart/studiopos/internal/staff"
	"github.com/shineart/studiopos/internal/timeutil"
)

// ErrNoSource is returned when a record is requested by key but no
// database-backed source was configured.
var ErrNoSource = errors.New("record source not configured")

type BillingSource interface {
	Bill(ctx context.Context, number string) (*billing.BillDetails, error)
	Invoice(ctx context.Context, number string) (*billing.InvoiceDetails, error)
}

type BookingSource interface {
	Get(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type StaffSource interface {
	DailySummary(ctx context.Context, staffID uuid.UUID, day time.Time) (*staff.WorkSummary, error)
}

// Dirs are the output folders, one per document kind.
type Dirs struct {
	Bills    string
	Invoices string
	Bookings string
	Reports  string
}

func DefaultDirs() Dirs {
	return Dirs{
		Bills:    "bills",
		Invoices: "invoices",
		Bookings: "bookings",
		Reports:  "reports",
	}
}

// For returns the folder documents of kind are written to.
func (d Dirs) For(kind document.Kind) string {
	switch kind {
	case document.KindBill:
		return d.Bills
	case document.KindInvoice:
		return d.Invoices
	case document.KindBooking:
		return d.Bookings
	default:
		return d.Reports
	}
}

type Service struct {
	billing  BillingSource
	bookings BookingSource
	staff    StaffSource
	renderer *render.Renderer
	log      zerolog.Logger

	dirs       Dirs
	letterhead document.Letterhead
	now        func() time.Time
}

type Option func(*Service)

func WithDirs(d Dirs) Option {
	return func(s *Service) { s.dirs = d }
}

func WithLetterhead(lh document.Letterhead) Option {
	return func(s *Service) { s.letterhead = lh }
}

// WithClock replaces the clock that stamps staff reports.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSources attaches the record sources used by the key-based methods.
// Any of them may be nil.
func WithSources(b BillingSource, bk BookingSource, st StaffSource) Option {
	return func(s *Service) {
		s.billing = b
		s.bookings = bk
		s.staff = st
	}
}

func NewService(r *render.Renderer, log zerolog.Logger, opts ...Option) *Service {
	s := &Service{
		renderer:   r,
		log:        log,
		dirs:       DefaultDirs(),
		letterhead: document.DefaultLetterhead(),
		now:        timeutil.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) Bill(ctx context.Context, number string) (string, error) {
	doc, err := s.BillDocument(ctx, number)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

func (s *Service) BillDocument(ctx context.Context, number string) (*document.Document, error) {
	if s.billing == nil {
		return nil, ErrNoSource
	}

	d, err := s.billing.Bill(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("loading bill %s: %w", number, err)
	}

	return document.BuildBill(*d, s.letterhead)
}

// RenderBill writes a bill that was not loaded from the database.
func (s *Service) RenderBill(d billing.BillDetails) (string, error) {
	doc, err := document.BuildBill(d, s.letterhead)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

func (s *Service) Invoice(ctx context.Context, number string) (string, error) {
	doc, err := s.InvoiceDocument(ctx, number)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

func (s *Service) InvoiceDocument(ctx context.Context, number string) (*document.Document, error) {
	if s.billing == nil {
		return nil, ErrNoSource
	}

	d, err := s.billing.Invoice(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("loading invoice %s: %w", number, err)
	}

	return document.BuildInvoice(*d, s.letterhead)
}

func (s *Service) RenderInvoice(d billing.InvoiceDetails) (string, error) {
	doc, err := document.BuildInvoice(d, s.letterhead)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

func (s *Service) Booking(ctx context.Context, id uuid.UUID) (string, error) {
	doc, err := s.BookingDocument(ctx, id)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

func (s *Service) BookingDocument(ctx context.Context, id uuid.UUID) (*document.Document, error) {
	if s.bookings == nil {
		return nil, ErrNoSource
	}

	b, err := s.bookings.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading booking %s: %w", id, err)
	}

	return document.BuildBooking(*b, s.letterhead)
}

func (s *Service) RenderBooking(b booking.Booking) (string, error) {
	doc, err := document.BuildBooking(b, s.letterhead)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

// StaffReport writes the member's report for the calendar day containing
// day, stamped with the current time.
func (s *Service) StaffReport(ctx context.Context, staffID uuid.UUID, day time.Time) (string, error) {
	doc, err := s.StaffReportDocument(ctx, staffID, day)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

func (s *Service) StaffReportDocument(ctx context.Context, staffID uuid.UUID, day time.Time) (*document.Document, error) {
	if s.staff == nil {
		return nil, ErrNoSource
	}

	w, err := s.staff.DailySummary(ctx, staffID, day)
	if err != nil {
		return nil, fmt.Errorf("loading work summary: %w", err)
	}

	return document.BuildStaffReport(*w, s.now(), s.letterhead)
}

func (s *Service) RenderStaffReport(w staff.WorkSummary) (string, error) {
	doc, err := s.SummaryDocument(w)
	if err != nil {
		return "", err
	}

	return s.Save(doc)
}

// SummaryDocument lays out a report for a summary that was not loaded from
// the database, stamped by the service clock in the studio zone.
func (s *Service) SummaryDocument(w staff.WorkSummary) (*document.Document, error) {
	return document.BuildStaffReport(w, s.now(), s.letterhead)
}

// Save renders doc into the folder for its kind.
func (s *Service) Save(doc *document.Document) (string, error) {
	s.log.Debug().Str("kind", string(doc.Kind)).Str("key", doc.Key).Msg("generating document")

	path, err := s.renderer.Render(doc, render.ForKind(doc.Kind), s.dirs.For(doc.Kind))
	if err != nil {
		return "", err
	}

	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	return path, nil
}

// Stream writes doc's PDF bytes to w without touching the disk.
func (s *Service) Stream(w io.Writer, doc *document.Document) error {
	return s.renderer.Write(w, doc, render.ForKind(doc.Kind))
}
