package cashbook

import (
	"fmt"
	"iter"
	"slices"
)

// Ledger represents an ordered list of records.
//
// Records keep their insertion order, and are addressed by their 1-based
// position in that order. Positions are not stable: deleting a record shifts
// the following ones down.
type Ledger struct {
	records []Record
}

// NewLedger creates a ledger holding records, in that order.
func NewLedger(records ...Record) *Ledger {
	return &Ledger{records: slices.Clone(records)}
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns a copy of all the records.
func (l *Ledger) Records() []Record { return slices.Clone(l.records) }

// checkIndex returns the 0-based offset of the 1-based position i.
func (l *Ledger) checkIndex(i int) (int, error) {
	if i < 1 || i > len(l.records) {
		return 0, fmt.Errorf("%w: record %d, the ledger has %d records", ErrIndexOutOfRange, i, len(l.records))
	}
	return i - 1, nil
}

// Record returns the record at the 1-based position i.
func (l *Ledger) Record(i int) (Record, error) {
	j, err := l.checkIndex(i)
	if err != nil {
		return Record{}, err
	}
	return l.records[j], nil
}

// Create appends a new record. amount is the non-negative magnitude, its sign
// is derived from category.
func (l *Ledger) Create(date string, category Category, amount Money, description string) (Record, error) {
	r, err := NewRecord(date, category, amount, description)
	if err != nil {
		return Record{}, err
	}
	l.records = append(l.records, r)
	return r, nil
}

// Update replaces all the fields of the record at the 1-based position i.
func (l *Ledger) Update(i int, date string, category Category, amount Money, description string) (Record, error) {
	j, err := l.checkIndex(i)
	if err != nil {
		return Record{}, err
	}
	r, err := NewRecord(date, category, amount, description)
	if err != nil {
		return Record{}, err
	}
	l.records[j] = r
	return r, nil
}

// Delete removes the record at the 1-based position i and returns it.
func (l *Ledger) Delete(i int) (Record, error) {
	j, err := l.checkIndex(i)
	if err != nil {
		return Record{}, err
	}
	r := l.records[j]
	l.records = slices.Delete(l.records, j, j+1)
	return r, nil
}

// Balance returns the signed sum of all the amounts.
func (l *Ledger) Balance() Money {
	total := M(0)
	for _, r := range l.records {
		total = total.Add(r.Amount)
	}
	return total
}

// Totals returns the total of incomes and the total of expenses, both as positive magnitudes.
func (l *Ledger) Totals() (income, expense Money) {
	income, expense = M(0), M(0)
	for _, r := range l.records {
		switch r.Category {
		case Income:
			income = income.Add(r.Magnitude())
		case Expense:
			expense = expense.Add(r.Magnitude())
		}
	}
	return income, expense
}

// Select returns an iterator over the records accepted by all the filters,
// with their 1-based position. With no filters all records are yielded.
//
// The iterator reads the ledger when it runs, it can be run several times.
func (l *Ledger) Select(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
	next:
		for i, r := range l.records {
			for _, accept := range filters {
				if !accept(r) {
					continue next
				}
			}
			if !yield(i+1, r) {
				return
			}
		}
	}
}

// All returns an iterator over all the records with their 1-based position.
func (l *Ledger) All() iter.Seq2[int, Record] { return l.Select() }

// ByCategory returns an iterator over the records of category c with their 1-based position.
func (l *Ledger) ByCategory(c Category) iter.Seq2[int, Record] {
	return l.Select(func(r Record) bool { return r.Category == c })
}
