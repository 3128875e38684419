package document_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/document"
	"github.com/shineart/studiopos/internal/timeutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func stamp() time.Time {
	return time.Date(2026, 10, 16, 14, 30, 0, 0, timeutil.Location)
}

func letterhead() document.Letterhead {
	lh := document.DefaultLetterhead()
	lh.Address = "12 Galle Road, Colombo"
	lh.Phone = "011 234 5678"

	return lh
}

// exampleBill is the walk-through bill: one item, a discount and change due.
func exampleBill() billing.BillDetails {
	return billing.BillDetails{
		Bill: billing.Bill{
			Number:        "0001",
			Subtotal:      dec("1000.00"),
			ServiceCharge: decimal.Zero,
			Discount:      dec("100.00"),
			Total:         dec("900.00"),
			CashGiven:     dec("1000.00"),
			CreatedByName: "Nadeesha",
			CreatedAt:     stamp(),
		},
		Items: []billing.LineItem{
			{Name: "Print A4", Type: billing.ItemService, Quantity: 2, UnitPrice: dec("500.00"), Total: dec("1000.00")},
		},
		Customer: billing.Customer{FullName: "Nimal Perera", MobileNumber: "0771234567"},
	}
}

func exampleInvoice() billing.InvoiceDetails {
	return billing.InvoiceDetails{
		Invoice: billing.Invoice{
			Number:              "INV-20261016-0007",
			Subtotal:            dec("3000.00"),
			CategoryServiceCost: dec("500.00"),
			Discount:            dec("250.00"),
			Total:               dec("3250.00"),
			AdvancePayment:      dec("1000.00"),
			PaidAmount:          dec("2000.00"),
			Balance:             dec("1250.00"),
			CreatedByName:       "Nadeesha",
			CreatedAt:           stamp(),
		},
		Items: []billing.LineItem{
			{Name: "Wedding Album", Type: billing.ItemService, Quantity: 1, UnitPrice: dec("2000.00"), Total: dec("2000.00")},
			{Name: "Gold Frame 8x10", Type: billing.ItemFrame, Quantity: 2, UnitPrice: dec("500.00"), Total: dec("1000.00")},
			{Name: "Studio Lighting", Type: billing.ItemCategoryService, Quantity: 1, UnitPrice: dec("500.00"), Total: dec("500.00")},
		},
		Customer: billing.Customer{FullName: "Kumari Fernando", MobileNumber: "0719876543"},
	}
}
