package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shineart/studiopos/internal/timeutil"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=staff
type Repository interface {
	GetMember(ctx context.Context, id uuid.UUID) (*Member, error)

	ListInvoices(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]InvoiceActivity, error)
	ListBookings(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]BookingActivity, error)
	ListCustomers(ctx context.Context, staffID uuid.UUID, from, to time.Time) ([]CustomerActivity, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// DailySummary collects everything the member created on day, using the
// studio zone for the day's boundaries.
func (s *Service) DailySummary(ctx context.Context, staffID uuid.UUID, day time.Time) (*WorkSummary, error) {
	member, err := s.repo.GetMember(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("getting staff member: %w", err)
	}

	from, to := timeutil.StartOfDay(day), timeutil.EndOfDay(day)

	invoices, err := s.repo.ListInvoices(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	bookings, err := s.repo.ListBookings(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}

	customers, err := s.repo.ListCustomers(ctx, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}

	return &WorkSummary{
		Member:    *member,
		Date:      from,
		Invoices:  invoices,
		Bookings:  bookings,
		Customers: customers,
	}, nil
}
