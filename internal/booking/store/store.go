package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/shineart/studiopos/internal/booking"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// GetBooking reads a booking. Rows written before category and service had
// their own columns only carry the combined "Category - Service" string.
func (s *Store) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	query := `
		SELECT b.id, b.customer_name, COALESCE(b.mobile_number, ''),
		       COALESCE(b.category, ''), COALESCE(b.service, ''), COALESCE(b.photographer_category, ''),
		       b.full_amount, COALESCE(b.advance_payment, 0), b.booking_date,
		       COALESCE(b.location, ''), COALESCE(b.description, ''), COALESCE(b.status, ''),
		       COALESCE(u.full_name, ''), b.created_at
		FROM bookings b
		LEFT JOIN users u ON u.id = b.created_by
		WHERE b.id = $1
	`

	var (
		b      booking.Booking
		legacy string
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&b.ID, &b.CustomerName, &b.MobileNumber,
		&b.Category.Category, &b.Category.Service, &legacy,
		&b.FullAmount, &b.AdvancePayment, &b.BookingDate,
		&b.Location, &b.Description, &b.Status,
		&b.CreatedByName, &b.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, booking.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("getting booking: %w", err)
	}

	if b.Category.Category == "" && b.Category.Service == "" && legacy != "" {
		b.Category = booking.ParseCategory(legacy)
	}

	return &b, nil
}
