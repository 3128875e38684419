// Package money formats monetary amounts the way studio documents print them.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Tolerance is the largest difference two amounts may have and still be
// considered equal after currency rounding.
var Tolerance = decimal.New(1, -2)

// Format renders d with exactly two decimal places behind prefix,
// e.g. Format("Rs.", 900) == "Rs.900.00".
func Format(prefix string, d decimal.Decimal) string {
	return prefix + d.StringFixed(2)
}

// Plain renders d with two decimal places and no prefix.
func Plain(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Grouped renders d with thousands separators and two decimals: "1,234.50".
func Grouped(d decimal.Decimal) string {
	s := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}

		b.WriteRune(r)
	}

	return sign + b.String() + "." + frac
}

// ClampZero returns d, or zero when d is negative.
func ClampZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}

	return d
}

// Equal reports whether a and b differ by no more than Tolerance.
func Equal(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
