package document

// Letterhead carries the studio identity printed on every document.
type Letterhead struct {
	Name           string
	Tagline        string
	Address        string
	Phone          string
	LogoPath       string
	CurrencySymbol string
	CurrencyCode   string
	ReceiptFooter  string
	InvoiceFooter  string
	ReportFooter   string
}

func DefaultLetterhead() Letterhead {
	return Letterhead{
		Name:           "Shine Art Studio",
		Tagline:        "Photography Services",
		CurrencySymbol: "Rs.",
		CurrencyCode:   "LKR",
		ReceiptFooter:  "Thank you! Come again.",
		InvoiceFooter:  "Thank you for your business!",
		ReportFooter:   "This report was automatically generated by Shine Art Studio POS System",
	}
}

// code returns the currency code followed by a space, "LKR ".
func (l Letterhead) code() string {
	return l.CurrencyCode + " "
}
