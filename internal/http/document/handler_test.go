package document_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/dispatch"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/generator"
	documentHandler "github.com/shineart/studiopos/internal/http/document"
	"github.com/shineart/studiopos/internal/render"
	"github.com/shineart/studiopos/internal/timeutil"
)

// brokenRenderer loads records normally but cannot produce PDF bytes.
type brokenRenderer struct {
	*generator.Service
}

func (brokenRenderer) Stream(io.Writer, *document.Document) error {
	return errors.New("pdf writer closed")
}

func TestHandler_StreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := billing.NewMockRepository(ctrl)
	id := uuid.New()

	repo.EXPECT().GetBill(gomock.Any(), "0001").Return(&billing.Bill{
		ID:            id,
		Number:        "0001",
		Subtotal:      decimal.NewFromInt(1000),
		Total:         decimal.NewFromInt(1000),
		CreatedByName: "Nadeesha",
		CreatedAt:     time.Date(2026, 10, 16, 14, 30, 0, 0, timeutil.Location),
	}, nil)
	repo.EXPECT().ListBillItems(gomock.Any(), id).Return([]billing.LineItem{
		{Name: "Print A4", Type: billing.ItemService, Quantity: 2, UnitPrice: decimal.NewFromInt(500), Total: decimal.NewFromInt(1000)},
	}, nil)

	root := t.TempDir()
	dirs := generator.Dirs{
		Bills:    filepath.Join(root, "bills"),
		Invoices: filepath.Join(root, "invoices"),
		Bookings: filepath.Join(root, "bookings"),
		Reports:  filepath.Join(root, "reports"),
	}

	gen := generator.NewService(render.New(zerolog.Nop(), nil), zerolog.Nop(),
		generator.WithDirs(dirs),
		generator.WithSources(billing.NewService(repo), nil, nil),
	)

	h := documentHandler.NewHandler(brokenRenderer{gen}, dispatch.New(nil, zerolog.Nop(), nil), dirs, zerolog.Nop())

	r := chi.NewRouter()
	h.Routes(r)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bills/0001/pdf", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEqual(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))
}
