package document

import (
	"github.com/shopspring/decimal"

	"github.com/shineart/studiopos/internal/booking"
	"github.com/shineart/studiopos/internal/document/table"
	"github.com/shineart/studiopos/internal/money"
	"github.com/shineart/studiopos/internal/timeutil"
)

// BuildBooking lays out the receipt handed over when a booking is taken.
func BuildBooking(b booking.Booking, lh Letterhead) (*Document, error) {
	c := checker{kind: KindBooking}
	c.require("created_at", !b.CreatedAt.IsZero())
	c.require("customer_name", b.CustomerName != "")
	c.require("photoshoot_category", b.Category.Category != "" || b.Category.Service != "")
	c.require("booking_date", !b.BookingDate.IsZero())
	c.require("full_amount", !b.FullAmount.IsNegative())

	if c.err != nil {
		return nil, c.err
	}

	code := lh.code()
	lkr := func(v decimal.Decimal) string { return money.Format(code, v) }

	ref := b.Reference()
	doc := &Document{
		Kind:      KindBooking,
		Key:       ref,
		Title:     "Booking " + ref,
		CreatedAt: b.CreatedAt,
	}

	doc.add(
		title(lh.Name),
		subtitle(lh.Tagline, false),
		subtitle("Booking Receipt", true),
		Spacer{Height: 6},
		labeled("Booking No:", ref),
		labeled("Issued:", timeutil.Local(b.CreatedAt).Format(timeutil.DateTimeLayout)),
	)

	if b.CreatedByName != "" {
		doc.add(labeled("Booked By:", b.CreatedByName))
	}

	doc.add(
		Spacer{Height: 7},
		section("Customer Details"),
		labeled("Name:", b.CustomerName),
	)

	if b.MobileNumber != "" {
		doc.add(labeled("Mobile:", b.MobileNumber))
	}

	details := []Pair{
		{Key: "Category:", Value: orDash(b.Category.Category)},
		{Key: "Service:", Value: orDash(b.Category.Service)},
		{Key: "Booking Date:", Value: b.BookingDate.Format(timeutil.DateLayout)},
	}

	if b.Location != "" {
		details = append(details, Pair{Key: "Location:", Value: b.Location})
	}

	if b.Description != "" {
		details = append(details, Pair{Key: "Description:", Value: b.Description})
	}

	doc.add(
		Spacer{Height: 7},
		section("Booking Details"),
		KeyValue{
			Pairs:      details,
			KeyWidth:   45,
			ValueWidth: 125,
			KeyAlign:   table.AlignLeft,
			ValueAlign: table.AlignLeft,
			Size:       bodySize,
			Grid:       true,
			KeyFill:    &lightGrey,
		},
		Spacer{Height: 7},
		section("Payment"),
	)

	payment := []Pair{{Key: "Full Amount:", Value: lkr(b.FullAmount)}}

	if b.AdvancePayment.IsPositive() {
		payment = append(payment, Pair{Key: "Advance Payment:", Value: lkr(b.AdvancePayment)})
	}

	balance := b.Balance()
	if !b.FullyPaid() {
		payment = append(payment, Pair{Key: "Balance Due:", Value: lkr(balance), Bold: true, RuleAbove: true})
	}

	doc.add(
		KeyValue{
			Pairs:      payment,
			KeyWidth:   76,
			ValueWidth: 51,
			KeyAlign:   table.AlignRight,
			ValueAlign: table.AlignRight,
			Size:       11,
		},
		Spacer{Height: 12},
		paymentStatus("BALANCE DUE: "+lkr(balance), balance),
		Spacer{Height: 6},
		footer(lh.InvoiceFooter, bodySize),
	)

	return doc, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
