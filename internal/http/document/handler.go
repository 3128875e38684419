package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shineart/studiopos/internal/auth"
	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/dispatch"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/generator"
	"github.com/shineart/studiopos/internal/staff"
	"github.com/shineart/studiopos/internal/timeutil"
)

// Generator loads and renders documents; *generator.Service implements it.
type Generator interface {
	BillDocument(ctx context.Context, number string) (*document.Document, error)
	InvoiceDocument(ctx context.Context, number string) (*document.Document, error)
	BookingDocument(ctx context.Context, id uuid.UUID) (*document.Document, error)
	StaffReportDocument(ctx context.Context, staffID uuid.UUID, day time.Time) (*document.Document, error)
	Save(doc *document.Document) (string, error)
	Stream(w io.Writer, doc *document.Document) error
}

type Handler struct {
	gen        Generator
	dispatcher *dispatch.Dispatcher
	roots      []string
	log        zerolog.Logger
}

// NewHandler serves document generation. Open and print requests are only
// honored for files under one of the output folders in dirs.
func NewHandler(gen Generator, d *dispatch.Dispatcher, dirs generator.Dirs, log zerolog.Logger) *Handler {
	var roots []string

	for _, dir := range []string{dirs.Bills, dirs.Invoices, dirs.Bookings, dirs.Reports} {
		if abs, err := filepath.Abs(dir); err == nil {
			roots = append(roots, abs)
		}
	}

	return &Handler{gen: gen, dispatcher: d, roots: roots, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/bills/{number}", h.save(h.bill))
	r.Get("/bills/{number}/pdf", h.stream(h.bill))
	r.Post("/invoices/{number}", h.save(h.invoice))
	r.Get("/invoices/{number}/pdf", h.stream(h.invoice))
	r.Post("/bookings/{id}", h.save(h.booking))
	r.Get("/bookings/{id}/pdf", h.stream(h.booking))
	r.Post("/reports/staff/{id}", h.save(h.staffReport))
	r.Get("/reports/staff/{id}/pdf", h.stream(h.staffReport))
	r.Post("/open", h.dispatch(dispatch.ActionOpen))
	r.Post("/print", h.dispatch(dispatch.ActionPrint))
}

// builder loads and lays out the document a request names.
type builder func(r *http.Request) (*document.Document, error)

type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string {
	return e.msg
}

func badRequest(msg string) error {
	return &requestError{status: http.StatusBadRequest, msg: msg}
}

func (h *Handler) bill(r *http.Request) (*document.Document, error) {
	return h.gen.BillDocument(r.Context(), chi.URLParam(r, "number"))
}

func (h *Handler) invoice(r *http.Request) (*document.Document, error) {
	return h.gen.InvoiceDocument(r.Context(), chi.URLParam(r, "number"))
}

func (h *Handler) booking(r *http.Request) (*document.Document, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, badRequest("invalid id")
	}

	return h.gen.BookingDocument(r.Context(), id)
}

// staffReport renders any member's report for admins; staff may only
// request their own.
func (h *Handler) staffReport(r *http.Request) (*document.Document, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return nil, badRequest("invalid id")
	}

	if claims, ok := auth.ClaimsFrom(r.Context()); ok && !claims.IsAdmin() && claims.UserID != id {
		return nil, &requestError{status: http.StatusForbidden, msg: "staff reports of other members are admin only"}
	}

	day := timeutil.Now()

	if s := r.URL.Query().Get("date"); s != "" {
		day, err = timeutil.ParseDate(s)
		if err != nil {
			return nil, badRequest("date must be YYYY-MM-DD")
		}
	}

	return h.gen.StaffReportDocument(r.Context(), id, day)
}

type pathResponse struct {
	Path string `json:"path"`
}

func (h *Handler) save(build builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := build(r)
		if err != nil {
			h.fail(w, err)
			return
		}

		path, err := h.gen.Save(doc)
		if err != nil {
			h.fail(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(pathResponse{Path: path}); err != nil {
			h.log.Error().Err(err).Msg("failed to encode response")
		}
	}
}

func (h *Handler) stream(build builder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := build(r)
		if err != nil {
			h.fail(w, err)
			return
		}

		var buf bytes.Buffer
		if err := h.gen.Stream(&buf, doc); err != nil {
			h.fail(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `inline; filename="`+doc.FileName()+`"`)
		w.Header().Set("Last-Modified", doc.CreatedAt.UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))

		if _, err := buf.WriteTo(w); err != nil {
			h.log.Error().Err(err).Str("key", doc.Key).Msg("streaming document")
		}
	}
}

type dispatchRequest struct {
	Path string `json:"path"`
}

type dispatchResponse struct {
	Success bool `json:"success"`
}

func (h *Handler) dispatch(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dispatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Path == "" {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if !h.allowed(req.Path) {
			http.Error(w, "path is outside the document folders", http.StatusBadRequest)
			return
		}

		var ok bool
		if action == dispatch.ActionOpen {
			ok = h.dispatcher.Open(r.Context(), req.Path)
		} else {
			ok = h.dispatcher.Print(r.Context(), req.Path)
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(dispatchResponse{Success: ok}); err != nil {
			h.log.Error().Err(err).Msg("failed to encode response")
		}
	}
}

func (h *Handler) allowed(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}

	for _, root := range h.roots {
		rel, err := filepath.Rel(root, abs)
		if err == nil && rel != "." && !strings.HasPrefix(rel, "..") && !filepath.IsAbs(rel) {
			return true
		}
	}

	return false
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	var reqErr *requestError

	switch {
	case errors.As(err, &reqErr):
		http.Error(w, reqErr.msg, reqErr.status)
	case errors.Is(err, billing.ErrNotFound), errors.Is(err, booking.ErrNotFound), errors.Is(err, staff.ErrNotFound):
		http.Error(w, "record not found", http.StatusNotFound)
	case errors.Is(err, document.ErrMissingField), errors.Is(err, document.ErrInconsistentTotals):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, generator.ErrNoSource):
		http.Error(w, "records are not available", http.StatusServiceUnavailable)
	default:
		h.log.Error().Err(err).Msg("document generation failed")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

