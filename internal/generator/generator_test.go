package generator_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/generator"
	"github.com/shineart/studiopos/internal/render"
	"github.com/shineart/studiopos/internal/staff"
	"github.com/shineart/studiopos/internal/timeutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func stamp() time.Time {
	return time.Date(2026, 10, 16, 14, 30, 0, 0, timeutil.Location)
}

type fixture struct {
	dirs     generator.Dirs
	billing  *billing.MockRepository
	bookings *booking.MockRepository
	staff    *staff.MockRepository
	svc      *generator.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	ctrl := gomock.NewController(t)

	f := &fixture{
		dirs: generator.Dirs{
			Bills:    filepath.Join(root, "bills"),
			Invoices: filepath.Join(root, "invoices"),
			Bookings: filepath.Join(root, "bookings"),
			Reports:  filepath.Join(root, "reports"),
		},
		billing:  billing.NewMockRepository(ctrl),
		bookings: booking.NewMockRepository(ctrl),
		staff:    staff.NewMockRepository(ctrl),
	}

	f.svc = generator.NewService(
		render.New(zerolog.Nop(), nil),
		zerolog.Nop(),
		generator.WithDirs(f.dirs),
		generator.WithClock(func() time.Time { return stamp().Add(4 * time.Hour) }),
		generator.WithSources(
			billing.NewService(f.billing),
			booking.NewService(f.bookings),
			staff.NewService(f.staff),
		),
	)

	return f
}

func exampleBill(id uuid.UUID) *billing.Bill {
	return &billing.Bill{
		ID:            id,
		Number:        "0001",
		Subtotal:      dec("1000.00"),
		Discount:      dec("100.00"),
		Total:         dec("900.00"),
		CashGiven:     dec("1000.00"),
		CreatedByName: "Nadeesha",
		CreatedAt:     stamp(),
	}
}

func billItems() []billing.LineItem {
	return []billing.LineItem{
		{Name: "Print A4", Type: billing.ItemService, Quantity: 2, UnitPrice: dec("500.00"), Total: dec("1000.00")},
	}
}

func assertPDF(t *testing.T, path string) {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestService_Bill(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.billing.EXPECT().GetBill(gomock.Any(), "0001").Return(exampleBill(id), nil).Times(2)
	f.billing.EXPECT().ListBillItems(gomock.Any(), id).Return(billItems(), nil).Times(2)

	first, err := f.svc.Bill(context.Background(), "0001")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.dirs.Bills, "BILL_0001.pdf"), first)
	assertPDF(t, first)

	second, err := f.svc.Bill(context.Background(), "0001")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	entries, err := os.ReadDir(f.dirs.Bills)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestService_BillNotFound(t *testing.T) {
	f := newFixture(t)
	f.billing.EXPECT().GetBill(gomock.Any(), "0404").Return(nil, billing.ErrNotFound)

	_, err := f.svc.Bill(context.Background(), "0404")
	require.ErrorIs(t, err, billing.ErrNotFound)

	_, statErr := os.Stat(f.dirs.Bills)
	assert.True(t, os.IsNotExist(statErr), "no folder or file for a failed generation")
}

func TestService_BillMissingField(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	b := exampleBill(id)
	b.CreatedByName = ""

	f.billing.EXPECT().GetBill(gomock.Any(), "0001").Return(b, nil)
	f.billing.EXPECT().ListBillItems(gomock.Any(), id).Return(billItems(), nil)

	_, err := f.svc.Bill(context.Background(), "0001")
	require.ErrorIs(t, err, document.ErrMissingField)

	var fe *document.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "created_by_name", fe.Field)
}

func TestService_Invoice(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	customerID := uuid.New()

	f.billing.EXPECT().GetInvoice(gomock.Any(), "INV-0007").Return(&billing.Invoice{
		ID:             id,
		Number:         "INV-0007",
		CustomerID:     &customerID,
		Subtotal:       dec("3000.00"),
		Total:          dec("3000.00"),
		AdvancePayment: dec("1000.00"),
		PaidAmount:     dec("3200.00"),
		Balance:        dec("-200.00"),
		CreatedByName:  "Nadeesha",
		CreatedAt:      stamp(),
	}, nil)
	f.billing.EXPECT().ListInvoiceItems(gomock.Any(), id).Return([]billing.LineItem{
		{Name: "Wedding Album", Type: billing.ItemService, Quantity: 1, UnitPrice: dec("3000.00"), Total: dec("3000.00")},
	}, nil)
	f.billing.EXPECT().GetCustomer(gomock.Any(), customerID).
		Return(&billing.Customer{FullName: "Kumari Fernando", MobileNumber: "0719876543"}, nil)

	path, err := f.svc.Invoice(context.Background(), "INV-0007")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.dirs.Invoices, "INV-0007.pdf"), path)
	assertPDF(t, path)
}

func TestService_Booking(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.bookings.EXPECT().GetBooking(gomock.Any(), id).Return(&booking.Booking{
		ID:             id,
		CustomerName:   "Ruwan Jayasinghe",
		Category:       booking.Category{Category: "Wedding", Service: "Album Deluxe"},
		FullAmount:     dec("5000.00"),
		AdvancePayment: dec("5000.00"),
		BookingDate:    time.Date(2026, 12, 5, 0, 0, 0, 0, timeutil.Location),
		CreatedByName:  "Nadeesha",
		CreatedAt:      stamp(),
	}, nil)

	path, err := f.svc.Booking(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.dirs.Bookings, "Booking_BK-20261016143000.pdf"), path)
	assertPDF(t, path)
}

func TestService_StaffReport(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()
	day := stamp()

	f.staff.EXPECT().GetMember(gomock.Any(), id).
		Return(&staff.Member{ID: id, FullName: "Sunil Silva", Username: "sunil"}, nil)
	f.staff.EXPECT().ListInvoices(gomock.Any(), id, timeutil.StartOfDay(day), timeutil.EndOfDay(day)).Return(nil, nil)
	f.staff.EXPECT().ListBookings(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, nil)
	f.staff.EXPECT().ListCustomers(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, nil)

	path, err := f.svc.StaffReport(context.Background(), id, day)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(f.dirs.Reports, "Staff_Report_Sunil_Silva_2026-10-16.pdf"), path)
	assertPDF(t, path)
}

func TestService_RenderOffline(t *testing.T) {
	root := t.TempDir()
	svc := generator.NewService(render.New(zerolog.Nop(), nil), zerolog.Nop(), generator.WithDirs(generator.Dirs{
		Bills:    filepath.Join(root, "b"),
		Invoices: filepath.Join(root, "i"),
		Bookings: filepath.Join(root, "k"),
		Reports:  filepath.Join(root, "r"),
	}))

	path, err := svc.RenderBill(billing.BillDetails{
		Bill:     *exampleBill(uuid.New()),
		Items:    billItems(),
		Customer: billing.Customer{FullName: billing.GuestCustomer, MobileNumber: billing.GuestCustomer},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "b", "BILL_0001.pdf"), path)

	_, err = svc.Bill(context.Background(), "0001")
	require.ErrorIs(t, err, generator.ErrNoSource)

	_, err = svc.StaffReport(context.Background(), uuid.New(), stamp())
	require.ErrorIs(t, err, generator.ErrNoSource)
}

func TestService_Stream(t *testing.T) {
	f := newFixture(t)
	id := uuid.New()

	f.billing.EXPECT().GetBill(gomock.Any(), "0001").Return(exampleBill(id), nil)
	f.billing.EXPECT().ListBillItems(gomock.Any(), id).Return(billItems(), nil)

	doc, err := f.svc.BillDocument(context.Background(), "0001")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.svc.Stream(&buf, doc))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestDirs_For(t *testing.T) {
	d := generator.DefaultDirs()

	assert.Equal(t, "bills", d.For(document.KindBill))
	assert.Equal(t, "invoices", d.For(document.KindInvoice))
	assert.Equal(t, "bookings", d.For(document.KindBooking))
	assert.Equal(t, "reports", d.For(document.KindStaffReport))
}

func TestService_SummaryDocument(t *testing.T) {
	summary := staff.WorkSummary{
		Member: staff.Member{ID: uuid.New(), FullName: "Sunil Silva", Username: "sunil"},
		Date:   stamp(),
	}

	t.Run("DefaultClockUsesStudioZone", func(t *testing.T) {
		svc := generator.NewService(render.New(zerolog.Nop(), nil), zerolog.Nop())

		doc, err := svc.SummaryDocument(summary)
		require.NoError(t, err)
		assert.Equal(t, timeutil.Location, doc.CreatedAt.Location())
	})

	t.Run("InjectedClock", func(t *testing.T) {
		f := newFixture(t)

		doc, err := f.svc.SummaryDocument(summary)
		require.NoError(t, err)
		assert.True(t, stamp().Add(4*time.Hour).Equal(doc.CreatedAt))
		assert.Equal(t, "Staff_Report_Sunil_Silva_2026-10-16.pdf", doc.FileName())
	})
}
