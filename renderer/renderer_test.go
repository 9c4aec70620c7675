package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/cashbook"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// table is the content of a markdown table.
type table struct {
	header []string
	rows   [][]string
}

// parseTables parses the markdown and returns all its tables.
func parseTables(t *testing.T, src string) []table {
	t.Helper()
	source := []byte(src)
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	root := md.Parser().Parse(text.NewReader(source))

	var tables []table
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *east.Table:
			tables = append(tables, table{})
		case *east.TableHeader:
			tables[len(tables)-1].header = cells(n, source)
			return ast.WalkSkipChildren, nil
		case *east.TableRow:
			last := &tables[len(tables)-1]
			last.rows = append(last.rows, cells(n, source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return tables
}

// cells returns the text of each cell of a table row.
func cells(row ast.Node, source []byte) []string {
	var result []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		var b strings.Builder
		ast.Walk(c, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
			if txt, ok := n.(*ast.Text); ok && entering {
				b.Write(txt.Segment.Value(source))
			}
			return ast.WalkContinue, nil
		})
		result = append(result, strings.TrimSpace(b.String()))
	}
	return result
}

func testLedger(t *testing.T) *cashbook.Ledger {
	t.Helper()
	l := cashbook.NewLedger()
	for _, r := range []struct {
		date     string
		category cashbook.Category
		amount   float64
		desc     string
	}{
		{"01-03-2025", cashbook.Income, 1200, "Salary"},
		{"02-03-2025", cashbook.Expense, 30, "Rent"},
		{"03-03-2025", cashbook.Expense, 12.5, "Groceries"},
	} {
		if _, err := l.Create(r.date, r.category, cashbook.M(r.amount), r.desc); err != nil {
			t.Fatalf("Create() unexpected error: %v", err)
		}
	}
	return l
}

func TestRecords(t *testing.T) {
	l := testLedger(t)

	out := Records("Expenses", "", l.ByCategory(cashbook.Expense))
	if !strings.HasPrefix(out, "## Expenses\n") {
		t.Errorf("missing title in:\n%s", out)
	}

	tables := parseTables(t, out)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(tables), out)
	}
	want := [][]string{
		{"02-03-2025", "Expense", "30", "Rent"},
		{"03-03-2025", "Expense", "12.5", "Groceries"},
	}
	if got := tables[0].rows; !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
	if got, want := strings.Join(tables[0].header, ","), "Date,Category,Amount,Description"; got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestRecordsWithPositions(t *testing.T) {
	l := testLedger(t)

	out := RenderRecords(NewTable("All records", "USD", l.All()).WithPositions())
	tables := parseTables(t, out)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(tables), out)
	}
	want := [][]string{
		{"1", "01-03-2025", "Income", "$1,200.00", "Salary"},
		{"2", "02-03-2025", "Expense", "$30.00", "Rent"},
		{"3", "03-03-2025", "Expense", "$12.50", "Groceries"},
	}
	if got := tables[0].rows; !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestRecordsEmpty(t *testing.T) {
	out := SearchResults(nil, "")
	if len(parseTables(t, out)) != 0 {
		t.Errorf("expected no table in:\n%s", out)
	}
	if !strings.Contains(out, "No records match the search.") {
		t.Errorf("missing empty message in:\n%s", out)
	}
}

func TestRecordsEscapesCells(t *testing.T) {
	l := cashbook.NewLedger()
	if _, err := l.Create("01-03-2025", cashbook.Expense, cashbook.M(1), "a|b\nc"); err != nil {
		t.Fatal(err)
	}
	out := Records("All", "", l.All())
	if !strings.Contains(out, `| a\|b c |`) {
		t.Errorf("description not escaped in:\n%s", out)
	}
}

func TestBalance(t *testing.T) {
	out := BalanceMarkdown(testLedger(t), "")
	if !strings.Contains(out, "Current balance: **1157.5**") {
		t.Errorf("missing balance in:\n%s", out)
	}
	tables := parseTables(t, out)
	if len(tables) != 1 {
		t.Fatalf("got %d tables, want 1:\n%s", len(tables), out)
	}
	want := [][]string{{"1200", "42.5", "3"}}
	if got := tables[0].rows; !equalRows(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func equalRows(a, b [][]string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if strings.Join(a[i], "\x00") != strings.Join(b[i], "\x00") {
			return false
		}
	}
	return true
}
