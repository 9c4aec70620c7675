package cashbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Param is a record field a search can filter on.
type Param int

const (
	ParamUnknown Param = iota
	ParamDate
	ParamCategory
	ParamAmount
	ParamDescription
)

// Params lists the searchable parameters in menu order.
var Params = []Param{ParamDate, ParamCategory, ParamAmount, ParamDescription}

func (p Param) String() string {
	switch p {
	case ParamDate:
		return "Date"
	case ParamCategory:
		return "Category"
	case ParamAmount:
		return "Amount"
	case ParamDescription:
		return "Description"
	default:
		return "unknown"
	}
}

// legacyParams maps the parameter names of the older localized tool.
var legacyParams = map[string]Param{
	"дата":      ParamDate,
	"категория": ParamCategory,
	"сумма":     ParamAmount,
	"описание":  ParamDescription,
}

// ParseParam parses a search parameter from its name (case-insensitive) or
// from its 1-based number in Params.
func ParseParam(s string) (Param, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > len(Params) {
			return ParamUnknown, fmt.Errorf("%w: search parameter number %d not in [1, %d]", ErrInvalidInput, n, len(Params))
		}
		return Params[n-1], nil
	}
	for _, p := range Params {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	if p, ok := legacyParams[strings.ToLower(s)]; ok {
		return p, nil
	}
	return ParamUnknown, fmt.Errorf("%w: unknown search parameter %q", ErrInvalidInput, s)
}

// Match returns the predicate accepting the records whose field p matches value.
//
//   - ParamDate: the date is exactly value.
//   - ParamCategory: the category is exactly the category labelled value.
//   - ParamAmount: value is ">N", "<N" or a bare non-negative integer "N" for
//     equality. The stored signed amount is compared, so ">0" never matches an
//     expense.
//   - ParamDescription: value is a case-insensitive substring of the description.
//
// An unknown parameter or a malformed value matches nothing.
func Match(p Param, value string) func(Record) bool {
	none := func(Record) bool { return false }
	switch p {
	case ParamDate:
		return func(r Record) bool { return r.Date == value }
	case ParamCategory:
		c, err := ParseCategory(value)
		if err != nil {
			return none
		}
		return func(r Record) bool { return r.Category == c }
	case ParamAmount:
		return matchAmount(value)
	case ParamDescription:
		sub := strings.ToLower(value)
		return func(r Record) bool { return strings.Contains(strings.ToLower(r.Description), sub) }
	default:
		return none
	}
}

// matchAmount implements the ParamAmount predicate.
func matchAmount(value string) func(Record) bool {
	none := func(Record) bool { return false }
	switch {
	case strings.HasPrefix(value, ">"):
		n, err := decimal.NewFromString(strings.TrimSpace(value[1:]))
		if err != nil {
			return none
		}
		return func(r Record) bool { return r.Amount.value.GreaterThan(n) }
	case strings.HasPrefix(value, "<"):
		n, err := decimal.NewFromString(strings.TrimSpace(value[1:]))
		if err != nil {
			return none
		}
		return func(r Record) bool { return r.Amount.value.LessThan(n) }
	case isDigits(value):
		n := decimal.RequireFromString(value)
		return func(r Record) bool { return r.Amount.value.Equal(n) }
	default:
		return none
	}
}

// isDigits reports whether s is a non empty string of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Filter returns the records whose field p matches value, in their original order.
func Filter(records []Record, p Param, value string) []Record {
	accept := Match(p, value)
	result := make([]Record, 0, len(records))
	for _, r := range records {
		if accept(r) {
			result = append(result, r)
		}
	}
	return result
}
