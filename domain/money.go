package domain

import (
	"database/sql/driver"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount carried with exactly two fractional digits.
// It stores, compares and marshals as a fixed 2-decimal string so totals
// survive round trips without floating-point drift.
type Money struct {
	decimal.Decimal
}

// NewMoney rounds d to two decimal places.
func NewMoney(d decimal.Decimal) Money {
	return Money{d.Round(2)}
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d), nil
}

func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.Decimal.StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
// Input is rounded to two decimal places so amounts never carry more
// precision than they store.
func (m *Money) UnmarshalJSON(data []byte) error {
	if err := m.Decimal.UnmarshalJSON(data); err != nil {
		return err
	}
	m.Decimal = m.Decimal.Round(2)
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.Decimal.StringFixed(2), nil
}

func (m *Money) Scan(value any) error {
	return m.Decimal.Scan(value)
}
