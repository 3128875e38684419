package staff

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shineart/studiopos/internal/booking"
)

var ErrNotFound = errors.New("staff member not found")

// DefaultRole is printed when a member has no role recorded.
const DefaultRole = "Staff"

type Member struct {
	ID       uuid.UUID
	FullName string
	Username string
	Role     string
}

// InvoiceActivity is an invoice created by the member.
type InvoiceActivity struct {
	InvoiceNumber string
	CustomerName  string
	Total         decimal.Decimal
	Paid          decimal.Decimal
	CreatedAt     time.Time
}

// BookingActivity is a booking taken by the member.
type BookingActivity struct {
	CustomerName   string
	Category       booking.Category
	BookingDate    time.Time
	FullAmount     decimal.Decimal
	AdvancePayment decimal.Decimal
}

// CustomerActivity is a customer registered by the member.
type CustomerActivity struct {
	FullName     string
	MobileNumber string
	CreatedAt    time.Time
}

// WorkSummary aggregates one member's activity over one calendar day.
// It is derived on demand and never stored.
type WorkSummary struct {
	Member    Member
	Date      time.Time
	Invoices  []InvoiceActivity
	Bookings  []BookingActivity
	Customers []CustomerActivity
}

func (w WorkSummary) InvoiceTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range w.Invoices {
		sum = sum.Add(inv.Total)
	}

	return sum
}

func (w WorkSummary) PaidTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, inv := range w.Invoices {
		sum = sum.Add(inv.Paid)
	}

	return sum
}

func (w WorkSummary) BookingTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, b := range w.Bookings {
		sum = sum.Add(b.FullAmount)
	}

	return sum
}

func (w WorkSummary) AdvanceTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, b := range w.Bookings {
		sum = sum.Add(b.AdvancePayment)
	}

	return sum
}
