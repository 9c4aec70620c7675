// Package date handles the day format used by ledger records.
package date

import (
	"fmt"
	"time"
)

// Format is the format used to write record dates: DD-MM-YYYY.
const Format = "02-01-2006"

const readFormat = "2-1-2006" // Permissive read format (allows single-digit day/month).

// TodayKeyword is the input standing for the current date.
const TodayKeyword = "0"

// now is replaced in tests.
var now = time.Now

// Today returns the current date in Format.
func Today() string { return now().Format(Format) }

// Resolve returns the date to store for an input: TodayKeyword or an empty
// input stands for today, anything else is kept as is.
func Resolve(input string) string {
	if input == "" || input == TodayKeyword {
		return Today()
	}
	return input
}

// Parse parses a day. It is lenient and accepts "1-7-2025" as well as "01-07-2025".
func Parse(str string) (time.Time, error) {
	on, err := time.Parse(readFormat, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q want format %q: %w", str, "DD-MM-YYYY", err)
	}
	return on, nil
}

// Canonical reports whether str is a valid date written exactly in Format.
func Canonical(str string) bool {
	on, err := Parse(str)
	return err == nil && on.Format(Format) == str
}
