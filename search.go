package cashbook

import "fmt"

// Criterion is one step of a search: a parameter and the value to match.
type Criterion struct {
	Param Param
	Value string
}

func (c Criterion) String() string { return fmt.Sprintf("%v=%q", c.Param, c.Value) }

// Search applies Filter for each criterion in turn, starting from records.
// The result holds the records matching all the criteria. With no criteria
// it is a copy of records.
func Search(records []Record, criteria ...Criterion) []Record {
	result := append(make([]Record, 0, len(records)), records...)
	for _, c := range criteria {
		result = Filter(result, c.Param, c.Value)
	}
	return result
}

// Search runs the criteria over all the records of the ledger.
func (l *Ledger) Search(criteria ...Criterion) []Record {
	return Search(l.records, criteria...)
}
