package decimal

import (
	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Fraction is the number of minor-unit digits kept for display.
const Fraction = 2

// amountFormatter renders minor units as "1 234 567,89": space thousands,
// comma decimals, no currency grapheme.
var amountFormatter = gomoney.NewFormatter(Fraction, ",", " ", "", "1")

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(Fraction)}
}

// MinorUnits returns the rounded amount expressed in cents.
func (m Money) MinorUnits() int64 {
	return m.Round().Decimal.Shift(Fraction).IntPart()
}

// String returns the plain machine-readable representation ("1234.50").
func (m Money) String() string {
	return m.Decimal.StringFixed(Fraction)
}

// Format returns the amount in the report number format, e.g. "1 234,50".
func (m Money) Format() string {
	return amountFormatter.Format(m.MinorUnits())
}

// FormatWithCurrency appends an ISO currency code: "1 234,50 PLN".
func (m Money) FormatWithCurrency(code string) string {
	if code == "" {
		return m.Format()
	}
	return m.Format() + " " + code
}
