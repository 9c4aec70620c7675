package cashbook

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Record is a single income or expense entry.
//
// Amount is signed: positive for an Income, negative for an Expense.
type Record struct {
	Date        string   // Date as entered, usually DD-MM-YYYY.
	Category    Category // Category is Income or Expense.
	Amount      Money    // Amount is the signed stored amount.
	Description string   // Description is a free text.
}

// NewRecord creates a record from a non-negative amount, applying the sign of the category.
// Invalid UTF-8 in date or description is replaced by U+FFFD, as JSON encoding would.
func NewRecord(date string, category Category, amount Money, description string) (Record, error) {
	if !category.Valid() {
		return Record{}, fmt.Errorf("%w: unknown category %q want %q or %q", ErrInvalidInput, category, Income, Expense)
	}
	if amount.IsNegative() {
		return Record{}, fmt.Errorf("%w: amount %v must not be negative", ErrInvalidInput, amount)
	}
	if category == Expense {
		amount = amount.Neg()
	}
	return Record{
		Date:        strings.ToValidUTF8(date, string(utf8.RuneError)),
		Category:    category,
		Amount:      amount,
		Description: strings.ToValidUTF8(description, string(utf8.RuneError)),
	}, nil
}

// Magnitude returns the amount as the user entered it: expenses are shown positive.
func (r Record) Magnitude() Money {
	if r.Category == Expense {
		return r.Amount.Neg()
	}
	return r.Amount
}

// Equal reports whether both records hold the same values.
func (r Record) Equal(o Record) bool {
	return r.Date == o.Date &&
		r.Category == o.Category &&
		r.Amount.Equal(o.Amount) &&
		r.Description == o.Description
}

// MarshalJSON implements the json.Marshaler interface for Record.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", r.Date)
	w.Append("category", r.Category)
	w.Append("amount", r.Amount)
	w.Append("description", r.Description)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var temp struct {
		Date        string   `json:"date"`
		Category    Category `json:"category"`
		Amount      Money    `json:"amount"`
		Description string   `json:"description"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if !temp.Category.Valid() {
		return fmt.Errorf("record %s %q has no category", temp.Date, temp.Description)
	}
	*r = Record{
		Date:        temp.Date,
		Category:    temp.Category,
		Amount:      temp.Amount,
		Description: temp.Description,
	}
	return nil
}
