package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shineart/studiopos/internal/timeutil"
)

var ErrNotFound = errors.New("booking not found")

// Category identifies what was booked. Category and Service are kept apart
// so reports can group by either without re-parsing display strings.
type Category struct {
	Category string
	Service  string
}

// String is the combined display form, "Wedding - Album".
func (c Category) String() string {
	switch {
	case c.Service == "":
		return c.Category
	case c.Category == "":
		return c.Service
	}

	return c.Category + " - " + c.Service
}

// ParseCategory splits a legacy "Category - Service" string. Only the first
// separator splits, so service names may contain " - ".
func ParseCategory(s string) Category {
	cat, svc, found := strings.Cut(s, " - ")
	if !found {
		return Category{Category: strings.TrimSpace(s)}
	}

	return Category{Category: strings.TrimSpace(cat), Service: strings.TrimSpace(svc)}
}

// Booking is a reservation with an advance payment.
type Booking struct {
	ID             uuid.UUID
	CustomerName   string
	MobileNumber   string
	Category       Category
	FullAmount     decimal.Decimal
	AdvancePayment decimal.Decimal
	BookingDate    time.Time
	Location       string
	Description    string
	Status         string
	CreatedByName  string
	CreatedAt      time.Time
}

// Reference is the printed booking number, "BK-" followed by the creation
// timestamp in the studio zone.
func (b Booking) Reference() string {
	return "BK-" + timeutil.Local(b.CreatedAt).Format(timeutil.StampLayout)
}

// Balance is the amount still owed. Never negative.
func (b Booking) Balance() decimal.Decimal {
	bal := b.FullAmount.Sub(b.AdvancePayment)
	if bal.IsNegative() {
		return decimal.Zero
	}

	return bal
}

// FullyPaid reports whether the advance covers the full amount.
func (b Booking) FullyPaid() bool {
	return b.AdvancePayment.GreaterThanOrEqual(b.FullAmount)
}
