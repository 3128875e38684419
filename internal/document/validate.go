package document

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/money"
)

var (
	ErrMissingField       = errors.New("missing required field")
	ErrInconsistentTotals = errors.New("inconsistent totals")
)

// FieldError names the required field a record is missing.
type FieldError struct {
	Kind  Kind
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, ErrMissingField)
}

func (e *FieldError) Unwrap() error {
	return ErrMissingField
}

type checker struct {
	kind Kind
	err  error
}

func (c *checker) require(field string, ok bool) {
	if c.err == nil && !ok {
		c.err = &FieldError{Kind: c.kind, Field: field}
	}
}

func (c *checker) sum(what string, got, want decimal.Decimal) {
	if c.err == nil && !money.Equal(got, want) {
		c.err = fmt.Errorf("%s: %s is %s, expected %s: %w", c.kind, what, got.StringFixed(2), want.StringFixed(2), ErrInconsistentTotals)
	}
}

func (c *checker) items(items []billing.LineItem) {
	for i, it := range items {
		c.require(fmt.Sprintf("items[%d].name", i), it.Name != "")
		c.require(fmt.Sprintf("items[%d].type", i), it.Type.Valid())
		c.require(fmt.Sprintf("items[%d].quantity", i), it.Quantity >= 1)
		c.require(fmt.Sprintf("items[%d].unit_price", i), !it.UnitPrice.IsNegative())
		c.sum(fmt.Sprintf("items[%d].total_price", i), it.Total, it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
}

func validateBill(d billing.BillDetails) error {
	b := d.Bill
	c := checker{kind: KindBill}

	c.require("bill_number", b.Number != "")
	c.require("created_at", !b.CreatedAt.IsZero())
	c.require("created_by_name", b.CreatedByName != "")
	c.require("customer.full_name", d.Customer.FullName != "")
	c.items(d.Items)
	c.sum("total_amount", b.Total, b.Subtotal.Add(b.ServiceCharge).Sub(b.Discount))
	c.require("total_amount", !b.Total.IsNegative())

	return c.err
}

func validateInvoice(d billing.InvoiceDetails) error {
	inv := d.Invoice
	c := checker{kind: KindInvoice}

	c.require("invoice_number", inv.Number != "")
	c.require("created_at", !inv.CreatedAt.IsZero())
	c.require("created_by_name", inv.CreatedByName != "")
	c.require("customer.full_name", d.Customer.FullName != "")
	c.items(d.Items)
	c.sum("total_amount", inv.Total, inv.Subtotal.Add(inv.CategoryServiceCost).Sub(inv.Discount))
	c.sum("balance_amount", inv.Balance, inv.Total.Sub(inv.PaidAmount))

	return c.err
}
