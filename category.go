package cashbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Category tells whether a record is an income or an expense.
type Category string

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

// legacyCategories maps labels found in ledger files written by older,
// localized versions of the tool.
var legacyCategories = map[string]Category{
	"Доход":  Income,
	"Расход": Expense,
}

// ParseCategory parses a category label.
//
// Only the exact labels "Income" and "Expense" (and their legacy localized
// form) are accepted.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	switch Category(s) {
	case Income, Expense:
		return Category(s), nil
	}
	if c, ok := legacyCategories[s]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown category %q want %q or %q", ErrInvalidInput, s, Income, Expense)
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool { return c == Income || c == Expense }

// Sign returns +1 for Income and -1 otherwise.
func (c Category) Sign() int {
	if c == Income {
		return 1
	}
	return -1
}

func (c Category) String() string { return string(c) }

// UnmarshalJSON implements json.Unmarshaler, accepting legacy labels.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
