package cashbook

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Query evaluates a JSONPath expression against the JSON form of the ledger,
// as it is stored on disk.
//
// For instance `$[?(@.category=="Expense")].description` lists the
// descriptions of all expenses.
func Query(ledger *Ledger, expr string) (any, error) {
	var b bytes.Buffer
	if err := EncodeLedger(&b, ledger); err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b.Bytes(), &doc); err != nil {
		return nil, fmt.Errorf("could not read back the ledger: %w", err)
	}
	result, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: query %q: %v", ErrInvalidInput, expr, err)
	}
	return result, nil
}
