package document_test

import (
	"testing"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shineart/studiopos/internal/billing"
	"github.com/shineart/studiopos/internal/document"
)

func findStatus(t *testing.T, doc *document.Document) document.Status {
	t.Helper()

	for _, b := range doc.Blocks {
		if s, ok := b.(document.Status); ok {
			return s
		}
	}

	t.Fatal("no status block")

	return document.Status{}
}

func findTable(t *testing.T, doc *document.Document, n int) document.TableBlock {
	t.Helper()

	for _, b := range doc.Blocks {
		if tb, ok := b.(document.TableBlock); ok {
			if n == 0 {
				return tb
			}
			n--
		}
	}

	t.Fatal("table not found")

	return document.TableBlock{}
}

func TestBuildInvoice(t *testing.T) {
	doc, err := document.BuildInvoice(exampleInvoice(), letterhead())
	require.NoError(t, err)

	lines := doc.PlainText()

	assert.Contains(t, lines, "Shine Art Studio")
	assert.Contains(t, lines, "Invoice Number: INV-20261016-0007")
	assert.Contains(t, lines, "Created By: Nadeesha")
	assert.Contains(t, lines, "Name: Kumari Fernando")
	assert.Contains(t, lines, "Mobile: 0719876543")
	assert.Contains(t, lines, "# | Item | Type | Qty | Unit Price (LKR) | Total (LKR)")
	assert.Contains(t, lines, "3 | Studio Lighting | Service Charge | 1 | 500.00 | 500.00")
	assert.Contains(t, lines, "2 | Gold Frame 8x10 | Frame | 2 | 500.00 | 1000.00")
	assert.Contains(t, lines, "Subtotal: LKR 3000.00")
	assert.Contains(t, lines, "Category Service Cost: LKR 500.00")
	assert.Contains(t, lines, "Discount: LKR 250.00")
	assert.Contains(t, lines, "Total Amount: LKR 3250.00")
	assert.Contains(t, lines, "Advance Paid: LKR 1000.00")
	assert.Contains(t, lines, "Amount Paid: LKR 2000.00")
	assert.Contains(t, lines, "Remaining Balance: LKR 1250.00")
	assert.Contains(t, lines, "Thank you for your business!")

	status := findStatus(t, doc)
	assert.False(t, status.Paid)
	assert.Equal(t, "PAYMENT PENDING: LKR 1250.00", status.Text)

	assert.Equal(t, "INV-20261016-0007.pdf", doc.FileName())
}

func TestBuildInvoice_KeepsItemTypeTag(t *testing.T) {
	d := exampleInvoice()

	_, err := document.BuildInvoice(d, letterhead())
	require.NoError(t, err)

	assert.Equal(t, billing.ItemCategoryService, d.Items[2].Type)
}

func TestBuildInvoice_Paid(t *testing.T) {
	type testCase struct {
		name    string
		paid    string
		balance string
	}

	tests := []testCase{
		{name: "Exact", paid: "3250.00", balance: "0.00"},
		{name: "Overpaid", paid: "3500.00", balance: "-250.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := exampleInvoice()
			d.Invoice.PaidAmount = dec(tt.paid)
			d.Invoice.Balance = dec(tt.balance)

			doc, err := document.BuildInvoice(d, letterhead())
			require.NoError(t, err)

			lines := doc.PlainText()
			assert.Contains(t, lines, "Remaining Balance: LKR 0.00")
			assert.NotContains(t, lines, "Remaining Balance: LKR -250.00")

			status := findStatus(t, doc)
			assert.True(t, status.Paid)
			assert.Equal(t, "FULLY PAID", status.Text)
		})
	}
}

func TestBuildInvoice_OmitsZeroOptionals(t *testing.T) {
	d := exampleInvoice()
	d.Invoice.CategoryServiceCost = dec("0")
	d.Invoice.Discount = dec("0")
	d.Invoice.AdvancePayment = dec("0")
	d.Invoice.Total = dec("3000.00")
	d.Invoice.Balance = dec("1000.00")
	d.Customer.MobileNumber = ""

	doc, err := document.BuildInvoice(d, letterhead())
	require.NoError(t, err)

	lines := doc.PlainText()
	assert.NotContains(t, lines, "Category Service Cost: LKR 0.00")
	assert.NotContains(t, lines, "Discount: LKR 0.00")
	assert.NotContains(t, lines, "Advance Paid: LKR 0.00")
	assert.Contains(t, lines, "Mobile: -")
}

func TestBuildInvoice_TableStyle(t *testing.T) {
	doc, err := document.BuildInvoice(exampleInvoice(), letterhead())
	require.NoError(t, err)

	tbl := findTable(t, doc, 0).Table

	header := tbl.HeaderRow()
	assert.True(t, header.Cells[0].Style.Bold)
	assert.NotEqual(t, header.Cells[0].Style.Fill, tbl.BodyRows()[0].Cells[0].Style.Fill)
	assert.Equal(t, "L", string(tbl.BodyRows()[0].Cells[1].Style.Align))
	assert.Equal(t, "R", string(tbl.BodyRows()[0].Cells[5].Style.Align))
}

func TestBuildInvoice_TypeColumnFitsLabels(t *testing.T) {
	doc, err := document.BuildInvoice(exampleInvoice(), letterhead())
	require.NoError(t, err)

	tbl := findTable(t, doc, 0).Table
	width := tbl.Columns[2].Width - tbl.Padding*2

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	for _, row := range tbl.Rows {
		cell := row.Cells[2]

		style := ""
		if cell.Style.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, cell.Style.Size)

		lines := pdf.SplitLines([]byte(cell.Text), width)
		assert.Len(t, lines, 1, "%q wraps in the type column", cell.Text)
	}

	assert.Equal(t, "Service Charge", tbl.BodyRows()[2].Cells[2].Text)
	assert.Equal(t, 170.0, tbl.Width())
}

func TestBuildInvoice_BalanceMismatch(t *testing.T) {
	d := exampleInvoice()
	d.Invoice.Balance = dec("100.00")

	_, err := document.BuildInvoice(d, letterhead())
	assert.ErrorIs(t, err, document.ErrInconsistentTotals)
}
