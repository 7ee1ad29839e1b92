package workledger

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, used to display salaries and costs.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns the amount value in currency.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted the way the currency is usually
// written, e.g. "$8,500.00" or "1.234,50 €".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

// Currency returns the ISO code of the currency.
func (m Money) Currency() string { return m.cur }

// Value returns the amount in major units.
func (m Money) Value() decimal.Decimal { return m.value }

// IsCurrency reports whether code is a known ISO 4217 currency code.
func IsCurrency(code string) bool {
	return money.GetCurrency(code) != nil
}
