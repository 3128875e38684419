package document

import (
	"strconv"
	"time"

	"github.com/shineart/studiopos/internal/document/table"
	"github.com/shineart/studiopos/internal/money"
	"github.com/shineart/studiopos/internal/staff"
	"github.com/shineart/studiopos/internal/timeutil"
)

var (
	summaryColumns = []table.Column{
		{Width: 64, Align: table.AlignLeft, Header: true},
		{Width: 38, Align: table.AlignCenter},
		{Width: 51, Align: table.AlignCenter},
	}
	invoiceActivityColumns = []table.Column{
		{Width: 10, Align: table.AlignCenter},
		{Width: 30, Align: table.AlignCenter},
		{Width: 46, Align: table.AlignLeft, MaxChars: 20},
		{Width: 30, Align: table.AlignRight},
		{Width: 30, Align: table.AlignRight},
		{Width: 20, Align: table.AlignCenter},
	}
	bookingActivityColumns = []table.Column{
		{Width: 10, Align: table.AlignCenter},
		{Width: 36, Align: table.AlignLeft, MaxChars: 18},
		{Width: 30, Align: table.AlignLeft, MaxChars: 15},
		{Width: 26, Align: table.AlignCenter},
		{Width: 30, Align: table.AlignRight},
		{Width: 30, Align: table.AlignRight},
	}
	customerActivityColumns = []table.Column{
		{Width: 13, Align: table.AlignCenter},
		{Width: 64, Align: table.AlignLeft},
		{Width: 38, Align: table.AlignCenter},
		{Width: 38, Align: table.AlignCenter},
	}
)

// BuildStaffReport lays out one staff member's daily work report.
func BuildStaffReport(w staff.WorkSummary, generatedAt time.Time, lh Letterhead) (*Document, error) {
	c := checker{kind: KindStaffReport}
	c.require("staff.full_name", w.Member.FullName != "")
	c.require("staff.username", w.Member.Username != "")
	c.require("date", !w.Date.IsZero())
	c.require("generated_at", !generatedAt.IsZero())

	if c.err != nil {
		return nil, c.err
	}

	date := timeutil.Local(w.Date).Format(timeutil.DateLayout)
	role := w.Member.Role
	if role == "" {
		role = staff.DefaultRole
	}

	doc := &Document{
		Kind:      KindStaffReport,
		Key:       SafeName(w.Member.FullName) + "_" + date,
		Title:     "Staff Report " + w.Member.FullName + " " + date,
		CreatedAt: generatedAt,
	}

	cur := lh.CurrencyCode

	doc.add(
		title(lh.Name),
		subtitle("Staff Daily Work Report", true),
		Spacer{Height: 4},
		labeled("Report Generated:", timeutil.Local(generatedAt).Format("2006-01-02 15:04")),
		Spacer{Height: 5},
		section("Staff Information"),
		KeyValue{
			Pairs: []Pair{
				{Key: "Staff Name:", Value: w.Member.FullName},
				{Key: "Username:", Value: "@" + w.Member.Username},
				{Key: "Role:", Value: role},
				{Key: "Report Date:", Value: date},
			},
			KeyWidth:   51,
			ValueWidth: 102,
			KeyAlign:   table.AlignLeft,
			ValueAlign: table.AlignLeft,
			Size:       bodySize,
			Grid:       true,
			KeyFill:    &lightGrey,
		},
		Spacer{Height: 5},
		section("Daily Summary"),
	)

	summary, err := table.Format([][]string{
		{"Metric", "Count", "Amount (" + cur + ")"},
		{"Invoices Created", strconv.Itoa(len(w.Invoices)), money.Grouped(w.InvoiceTotal())},
		{"Payments Received", "-", money.Grouped(w.PaidTotal())},
		{"Bookings Created", strconv.Itoa(len(w.Bookings)), money.Grouped(w.BookingTotal())},
		{"Advance Collected", "-", money.Grouped(w.AdvanceTotal())},
		{"Customers Added", strconv.Itoa(len(w.Customers)), "-"},
	}, summaryColumns, gridStyle(brandBlue, summaryBg))
	if err != nil {
		return nil, err
	}

	doc.add(TableBlock{Table: summary}, Spacer{Height: 5}, section("Invoices Created"))

	if len(w.Invoices) == 0 {
		doc.add(none("No invoices created on this date."))
	} else {
		rows := [][]string{{"#", "Invoice No.", "Customer", "Total (" + cur + ")", "Paid (" + cur + ")", "Time"}}
		for i, inv := range w.Invoices {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				inv.InvoiceNumber,
				orDash(inv.CustomerName),
				money.Grouped(inv.Total),
				money.Grouped(inv.Paid),
				timeutil.Local(inv.CreatedAt).Format(timeutil.ClockLayout),
			})
		}

		if err := doc.addTable(rows, invoiceActivityColumns, gridStyle(invoiceHdr, invoiceBg)); err != nil {
			return nil, err
		}
	}

	doc.add(Spacer{Height: 5}, section("Bookings Created"))

	if len(w.Bookings) == 0 {
		doc.add(none("No bookings created on this date."))
	} else {
		rows := [][]string{{"#", "Customer", "Category", "Date", "Amount (" + cur + ")", "Advance (" + cur + ")"}}
		for i, b := range w.Bookings {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				orDash(b.CustomerName),
				orDash(b.Category.String()),
				b.BookingDate.Format(timeutil.DateLayout),
				money.Grouped(b.FullAmount),
				money.Grouped(b.AdvancePayment),
			})
		}

		if err := doc.addTable(rows, bookingActivityColumns, gridStyle(bookingHdr, bookingBg)); err != nil {
			return nil, err
		}
	}

	doc.add(Spacer{Height: 5}, section("Customers Added"))

	if len(w.Customers) == 0 {
		doc.add(none("No customers added on this date."))
	} else {
		rows := [][]string{{"#", "Customer Name", "Mobile Number", "Added At"}}
		for i, cu := range w.Customers {
			rows = append(rows, []string{
				strconv.Itoa(i + 1),
				orDash(cu.FullName),
				orDash(cu.MobileNumber),
				timeutil.Local(cu.CreatedAt).Format(timeutil.ClockLayout),
			})
		}

		if err := doc.addTable(rows, customerActivityColumns, gridStyle(custHdr, custBg)); err != nil {
			return nil, err
		}
	}

	doc.add(
		Spacer{Height: 12},
		Separator{},
		footer(lh.ReportFooter, 9),
	)

	return doc, nil
}

func (d *Document) addTable(rows [][]string, cols []table.Column, style table.Style) error {
	t, err := table.Format(rows, cols, style)
	if err != nil {
		return err
	}

	d.add(TableBlock{Table: t})

	return nil
}

func none(s string) Paragraph {
	return Paragraph{Text: s, Size: bodySize, Italic: true, Align: table.AlignLeft}
}
