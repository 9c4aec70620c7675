package renderer

import (
	"iter"

	"github.com/etnz/cashbook"
)

// Row is a record ready to be displayed. Amount is the magnitude: expenses are positive.
type Row struct {
	Position    int
	Date        string
	Category    string
	Amount      string
	Description string
}

// Table is a titled list of records.
type Table struct {
	Title     string
	Positions bool   // Positions shows the 1-based position of each record, to edit or delete it.
	Empty     string // Empty is displayed instead of the table when there is no row.
	Rows      []Row
}

// NewTable collects the records yielded by seq. Amounts are formatted in currency (see cashbook.Money.Format).
func NewTable(title, currency string, seq iter.Seq2[int, cashbook.Record]) *Table {
	t := &Table{Title: title, Empty: "No records."}
	for i, r := range seq {
		t.Rows = append(t.Rows, Row{
			Position:    i,
			Date:        r.Date,
			Category:    r.Category.String(),
			Amount:      r.Magnitude().Format(currency),
			Description: r.Description,
		})
	}
	return t
}

// WithPositions makes the table display the record positions.
func (t *Table) WithPositions() *Table {
	t.Positions = true
	return t
}

// Slice returns an iterator over records, positioned from 1.
func Slice(records []cashbook.Record) iter.Seq2[int, cashbook.Record] {
	return func(yield func(int, cashbook.Record) bool) {
		for i, r := range records {
			if !yield(i+1, r) {
				return
			}
		}
	}
}

// Records renders the records yielded by seq under title.
func Records(title, currency string, seq iter.Seq2[int, cashbook.Record]) string {
	return RenderRecords(NewTable(title, currency, seq))
}

// SearchResults renders the result of a search.
func SearchResults(records []cashbook.Record, currency string) string {
	t := NewTable("Search results", currency, Slice(records))
	t.Empty = "No records match the search."
	return RenderRecords(t)
}
