package document

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/document/table"
	"github.com/shineart/studiopos/internal/money"
	"github.com/shineart/studiopos/internal/timeutil"
)

var invoiceColumns = []table.Column{
	{Width: 10, Align: table.AlignCenter},
	{Width: 52, Align: table.AlignLeft},
	{Width: 30, Align: table.AlignCenter},
	{Width: 14, Align: table.AlignCenter},
	{Width: 32, Align: table.AlignRight},
	{Width: 32, Align: table.AlignRight},
}

// BuildInvoice lays out an A4 invoice with its item table and payment state.
func BuildInvoice(d billing.InvoiceDetails, lh Letterhead) (*Document, error) {
	if err := validateInvoice(d); err != nil {
		return nil, err
	}

	inv := d.Invoice
	code := lh.code()
	lkr := func(v decimal.Decimal) string { return money.Format(code, v) }

	doc := &Document{
		Kind:      KindInvoice,
		Key:       inv.Number,
		Title:     "Invoice " + inv.Number,
		CreatedAt: inv.CreatedAt,
	}

	mobile := "-"
	if d.Customer.HasMobile() {
		mobile = d.Customer.MobileNumber
	}

	doc.add(
		title(lh.Name),
		subtitle(lh.Tagline, false),
		Spacer{Height: 6},
		labeled("Invoice Number:", inv.Number),
		labeled("Date:", timeutil.Local(inv.CreatedAt).Format(timeutil.DateTimeLayout)),
		labeled("Created By:", inv.CreatedByName),
		Spacer{Height: 7},
		section("Customer Details"),
		labeled("Name:", d.Customer.FullName),
		labeled("Mobile:", mobile),
		Spacer{Height: 7},
		section("Invoice Items"),
	)

	rows := [][]string{{"#", "Item", "Type", "Qty", "Unit Price (" + lh.CurrencyCode + ")", "Total (" + lh.CurrencyCode + ")"}}
	for i, it := range d.Items {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			it.Name,
			it.Type.Label(),
			strconv.Itoa(it.Quantity),
			money.Plain(it.UnitPrice),
			money.Plain(it.Total),
		})
	}

	style := gridStyle(brandBlue, table.Beige)
	style.Border = table.Border{Width: 0.35, Color: table.Black}

	items, err := table.Format(rows, invoiceColumns, style)
	if err != nil {
		return nil, err
	}

	doc.add(TableBlock{Table: items}, Spacer{Height: 7}, section("Payment Details"))

	pairs := []Pair{{Key: "Subtotal:", Value: lkr(inv.Subtotal)}}

	if inv.CategoryServiceCost.IsPositive() {
		pairs = append(pairs, Pair{Key: "Category Service Cost:", Value: lkr(inv.CategoryServiceCost)})
	}

	if inv.Discount.IsPositive() {
		pairs = append(pairs, Pair{Key: "Discount:", Value: lkr(inv.Discount)})
	}

	pairs = append(pairs, Pair{Key: "Total Amount:", Value: lkr(inv.Total), Bold: true, RuleAbove: true})

	if inv.AdvancePayment.IsPositive() {
		pairs = append(pairs, Pair{Key: "Advance Paid:", Value: lkr(inv.AdvancePayment)})
	}

	remaining := money.ClampZero(inv.Balance)

	pairs = append(pairs,
		Pair{Key: "Amount Paid:", Value: lkr(inv.PaidAmount)},
		Pair{Key: "Remaining Balance:", Value: lkr(remaining), Bold: true, RuleAbove: true},
	)

	doc.add(
		KeyValue{
			Pairs:      pairs,
			KeyWidth:   76,
			ValueWidth: 51,
			KeyAlign:   table.AlignRight,
			ValueAlign: table.AlignRight,
			Size:       11,
		},
		Spacer{Height: 12},
		paymentStatus("PAYMENT PENDING: "+lkr(remaining), remaining),
		Spacer{Height: 6},
		footer(lh.InvoiceFooter, bodySize),
	)

	return doc, nil
}

// paymentStatus is the pending banner while anything is owed, otherwise
// the paid banner.
func paymentStatus(pending string, owed decimal.Decimal) Status {
	if owed.IsPositive() {
		return Status{Text: pending, Size: 12, Color: dueRed}
	}

	return Status{Text: "FULLY PAID", Paid: true, Size: 12, Color: paidGreen}
}
