package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shineart/studiopos/internal/document"
)

func TestFileName(t *testing.T) {
	type testCase struct {
		name string
		doc  document.Document
		want string
	}

	tests := []testCase{
		{name: "Bill", doc: document.Document{Kind: document.KindBill, Key: "0042"}, want: "BILL_0042.pdf"},
		{name: "BillUnsafe", doc: document.Document{Kind: document.KindBill, Key: "12/7"}, want: "BILL_12_7.pdf"},
		{name: "Invoice", doc: document.Document{Kind: document.KindInvoice, Key: "INV-0001"}, want: "INV-0001.pdf"},
		{name: "Booking", doc: document.Document{Kind: document.KindBooking, Key: "BK-20261016090507"}, want: "Booking_BK-20261016090507.pdf"},
		{name: "Report", doc: document.Document{Kind: document.KindStaffReport, Key: "Sunil_Silva_2026-10-16"}, want: "Staff_Report_Sunil_Silva_2026-10-16.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.FileName())
		})
	}
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "Sunil_Silva", document.SafeName(" Sunil Silva "))
	assert.Equal(t, "Sunil_de_Silva", document.SafeName("Sunil de Silva"))
	assert.Equal(t, "___etc_passwd", document.SafeName("../etc/passwd"))
}
