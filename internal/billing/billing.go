package billing

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrNotFound = errors.New("billing record not found")

// ItemType tags a line item. The tag is kept as stored; only its printed
// label may differ.
type ItemType string

const (
	ItemService         ItemType = "Service"
	ItemFrame           ItemType = "Frame"
	ItemCategoryService ItemType = "CategoryService"
)

// Label is the name printed for the item type on documents.
func (t ItemType) Label() string {
	if t == ItemCategoryService {
		return "Service Charge"
	}

	return string(t)
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemService, ItemFrame, ItemCategoryService:
		return true
	}

	return false
}

// LineItem is one priced row of a bill or invoice.
type LineItem struct {
	Name      string
	Type      ItemType
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// GuestCustomer is stored in place of a name or mobile number for walk-in
// customers.
const GuestCustomer = "Guest Customer"

// Customer is a snapshot of the customer at the time a document is produced.
type Customer struct {
	FullName     string
	MobileNumber string
}

// HasMobile reports whether the snapshot carries a real mobile number.
func (c Customer) HasMobile() bool {
	return c.MobileNumber != "" && c.MobileNumber != GuestCustomer
}

// Bill is a finalized point-of-sale transaction.
type Bill struct {
	ID            uuid.UUID
	Number        string
	CustomerID    *uuid.UUID
	Subtotal      decimal.Decimal
	ServiceCharge decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	CashGiven     decimal.Decimal
	CreatedByName string
	CreatedAt     time.Time
}

// Change is the difference between the cash handed over and the total.
// Negative values mean the customer still owes money.
func (b Bill) Change() decimal.Decimal {
	return b.CashGiven.Sub(b.Total)
}

// Invoice is a formal billing document with payment tracking.
type Invoice struct {
	ID                  uuid.UUID
	Number              string
	CustomerID          *uuid.UUID
	Subtotal            decimal.Decimal
	CategoryServiceCost decimal.Decimal
	Discount            decimal.Decimal
	Total               decimal.Decimal
	AdvancePayment      decimal.Decimal
	PaidAmount          decimal.Decimal
	Balance             decimal.Decimal
	CreatedByName       string
	CreatedAt           time.Time
}

// BillDetails is everything needed to print a bill.
type BillDetails struct {
	Bill     Bill
	Items    []LineItem
	Customer Customer
}

// InvoiceDetails is everything needed to print an invoice.
type InvoiceDetails struct {
	Invoice  Invoice
	Items    []LineItem
	Customer Customer
}
