package document

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/document/table"
	"github.com/shineart/studiopos/internal/money"
	"github.com/shineart/studiopos/internal/timeutil"
)

// Receipt text sizes, in points.
const (
	receiptTitleSize = 14
	receiptTextSize  = 8
)

// BuildBill lays out a thermal receipt for a finalized bill.
func BuildBill(d billing.BillDetails, lh Letterhead) (*Document, error) {
	if err := validateBill(d); err != nil {
		return nil, err
	}

	b := d.Bill
	rs := func(v decimal.Decimal) string { return money.Format(lh.CurrencySymbol, v) }

	doc := &Document{
		Kind:      KindBill,
		Key:       b.Number,
		Title:     "Bill " + b.Number,
		CreatedAt: b.CreatedAt,
	}

	if lh.LogoPath != "" {
		doc.add(Image{Path: lh.LogoPath, Width: 30, Height: 30, Grayscale: true}, Spacer{Height: 2})
	}

	doc.add(
		Heading{Text: strings.ToUpper(lh.Name), Size: receiptTitleSize, Align: table.AlignCenter},
		small(lh.Tagline),
	)

	if lh.Address != "" {
		doc.add(small("Address: " + lh.Address))
	}

	if lh.Phone != "" {
		doc.add(small("Phone: " + lh.Phone))
	}

	doc.add(
		Spacer{Height: 3},
		Separator{Double: true},
		Spacer{Height: 2},
		text("Bill No: "+b.Number, true),
		text("Date: "+timeutil.Local(b.CreatedAt).Format(timeutil.DateTimeLayout), false),
		text("Customer: "+d.Customer.FullName, false),
	)

	if d.Customer.HasMobile() {
		doc.add(text("Mobile: "+d.Customer.MobileNumber, false))
	}

	doc.add(Spacer{Height: 2}, Separator{}, Spacer{Height: 2})

	for _, it := range d.Items {
		line := text(fmt.Sprintf("%d x %s = %s", it.Quantity, rs(it.UnitPrice), rs(it.Total)), false)
		line.Indent = 2

		doc.add(text(it.Name, true), line)
	}

	doc.add(
		Spacer{Height: 2},
		Separator{},
		Spacer{Height: 2},
		text("Subtotal: "+rs(b.Subtotal), false),
	)

	if b.ServiceCharge.IsPositive() {
		doc.add(text("Service Charge: "+rs(b.ServiceCharge), false))
	}

	if b.Discount.IsPositive() {
		doc.add(text("Discount: "+rs(b.Discount), false))
	}

	doc.add(text("Total: "+rs(b.Total), true))

	if b.CashGiven.IsPositive() {
		doc.add(Spacer{Height: 2}, text("Cash Given: "+rs(b.CashGiven), false))

		switch change := b.Change(); {
		case change.IsPositive():
			doc.add(text("Balance: "+rs(change), false))
		case change.IsNegative():
			doc.add(text("Balance Due: "+rs(change.Abs()), false))
		}
	}

	doc.add(
		Spacer{Height: 3},
		Separator{Double: true},
		Spacer{Height: 2},
		Paragraph{Text: lh.ReceiptFooter, Size: receiptTextSize, Bold: true, Align: table.AlignCenter},
		Spacer{Height: 2},
		small("Served by: "+b.CreatedByName),
		Spacer{Height: 2},
		Barcode{Value: b.Number, Width: 50, Height: 10},
	)

	return doc, nil
}

func small(s string) Paragraph {
	return Paragraph{Text: s, Size: receiptTextSize, Align: table.AlignCenter}
}

func text(s string, bold bool) Paragraph {
	return Paragraph{Text: s, Size: receiptTextSize, Bold: bold, Align: table.AlignLeft}
}
