package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/staff"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetMember(ctx context.Context, id uuid.UUID) (*staff.Member, error) {
	query := `SELECT id, full_name, username, COALESCE(role, '') FROM users WHERE id = $1`

	var m staff.Member

	err := s.db.QueryRowContext(ctx, query, id).Scan(&m.ID, &m.FullName, &m.Username, &m.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, staff.ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("getting staff member: %w", err)
	}

	return &m, nil
}

func (s *Store) ListInvoices(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]staff.InvoiceActivity, error) {
	query := `
		SELECT i.invoice_number, COALESCE(c.full_name, ''), i.total_amount, i.paid_amount, i.created_at
		FROM invoices i
		LEFT JOIN customers c ON c.id = i.customer_id
		WHERE i.created_by = $1 AND i.created_at BETWEEN $2 AND $3
		ORDER BY i.created_at
	`

	rows, err := s.db.QueryContext(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying invoices: %w", err)
	}
	defer rows.Close()

	var out []staff.InvoiceActivity

	for rows.Next() {
		var a staff.InvoiceActivity
		if err := rows.Scan(&a.InvoiceNumber, &a.CustomerName, &a.Total, &a.Paid, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning invoice: %w", err)
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Store) ListBookings(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]staff.BookingActivity, error) {
	query := `
		SELECT customer_name, COALESCE(category, ''), COALESCE(service, ''), COALESCE(photographer_category, ''),
		       booking_date, full_amount, COALESCE(advance_payment, 0)
		FROM bookings
		WHERE created_by = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}
	defer rows.Close()

	var out []staff.BookingActivity

	for rows.Next() {
		var (
			a      staff.BookingActivity
			legacy string
		)

		if err := rows.Scan(
			&a.CustomerName, &a.Category.Category, &a.Category.Service, &legacy,
			&a.BookingDate, &a.FullAmount, &a.AdvancePayment,
		); err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}

		if a.Category == (booking.Category{}) && legacy != "" {
			a.Category = booking.ParseCategory(legacy)
		}

		out = append(out, a)
	}

	return out, rows.Err()
}

func (s *Store) ListCustomers(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]staff.CustomerActivity, error) {
	query := `
		SELECT full_name, COALESCE(mobile_number, ''), created_at
		FROM customers
		WHERE created_by = $1 AND created_at BETWEEN $2 AND $3
		ORDER BY created_at
	`

	rows, err := s.db.QueryContext(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying customers: %w", err)
	}
	defer rows.Close()

	var out []staff.CustomerActivity

	for rows.Next() {
		var a staff.CustomerActivity
		if err := rows.Scan(&a.FullName, &a.MobileNumber, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		out = append(out, a)
	}

	return out, rows.Err()
}
