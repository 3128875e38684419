package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/timeutil"
)

func TestBooking_FullyPaid(t *testing.T) {
	type testCase struct {
		name        string
		full        string
		advance     string
		wantPaid    bool
		wantBalance string
	}

	tests := []testCase{
		{name: "Partial", full: "5000", advance: "2000", wantPaid: false, wantBalance: "3000.00"},
		{name: "Exact", full: "5000", advance: "5000", wantPaid: true, wantBalance: "0.00"},
		{name: "Overpaid", full: "5000", advance: "6000", wantPaid: true, wantBalance: "0.00"},
		{name: "NoAdvance", full: "5000", advance: "0", wantPaid: false, wantBalance: "5000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := booking.Booking{
				FullAmount:     decimal.RequireFromString(tt.full),
				AdvancePayment: decimal.RequireFromString(tt.advance),
			}

			assert.Equal(t, tt.wantPaid, b.FullyPaid())
			assert.Equal(t, tt.wantBalance, b.Balance().StringFixed(2))
		})
	}
}

func TestBooking_Reference(t *testing.T) {
	timeutil.SetZone("Asia/Colombo")

	b := booking.Booking{CreatedAt: time.Date(2026, 10, 16, 9, 30, 15, 0, timeutil.Location)}
	assert.Equal(t, "BK-20261016093015", b.Reference())
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, booking.Category{Category: "Wedding", Service: "Album"}, booking.ParseCategory("Wedding - Album"))
	assert.Equal(t, booking.Category{Category: "Wedding", Service: "Pre - Shoot"}, booking.ParseCategory("Wedding - Pre - Shoot"))
	assert.Equal(t, booking.Category{Category: "Portrait"}, booking.ParseCategory("Portrait"))
	assert.Equal(t, "Wedding - Album", booking.Category{Category: "Wedding", Service: "Album"}.String())
	assert.Equal(t, "Portrait", booking.Category{Category: "Portrait"}.String())
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := booking.NewMockRepository(ctrl)

	id := uuid.New()
	repo.EXPECT().GetBooking(gomock.Any(), id).Return(&booking.Booking{ID: id, CustomerName: "Kamal"}, nil)

	got, err := booking.NewService(repo).Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Kamal", got.CustomerName)

	missing := uuid.New()
	repo.EXPECT().GetBooking(gomock.Any(), missing).Return(nil, booking.ErrNotFound)

	_, err = booking.NewService(repo).Get(context.Background(), missing)
	assert.ErrorIs(t, err, booking.ErrNotFound)
}
