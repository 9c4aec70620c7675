package cashbook

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Money is an exact, signed amount. It carries no currency: the ledger is
// single currency and the currency is only a display concern (see Format).
type Money struct {
	value decimal.Decimal
}

// M returns the Money for value.
func M[T float64 | int | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

// ParseAmount parses a user supplied, non-negative amount like "120" or "12.50".
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: amount %q is not a number", ErrInvalidInput, s)
	}
	if v.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount %q must not be negative", ErrInvalidInput, s)
	}
	return Money{value: v}, nil
}

func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Sign() int                       { return m.value.Sign() }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }
func (m Money) Add(n Money) Money               { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money               { return Money{value: m.value.Sub(n.value)} }
func (m Money) String() string                  { return m.value.String() }
func (m Money) MarshalJSON() ([]byte, error)    { return m.value.MarshalJSON() }
func (m *Money) UnmarshalJSON(data []byte) error { return m.value.UnmarshalJSON(data) }

// Format returns the amount formatted for the given ISO currency code, like
// "$1,200.50" for USD. An empty code returns the plain decimal value.
func (m Money) Format(currency string) string {
	if currency == "" {
		return m.String()
	}
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, currency).Currency()
	minor := m.value.Round(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

// ValidateCurrency checks that code is a currency known to the formatter.
func ValidateCurrency(code string) error {
	if code == "" {
		return nil
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, code)
	}
	return nil
}
