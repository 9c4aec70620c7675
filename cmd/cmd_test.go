package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/menu"
	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLedger = `[
  {"date":"01-03-2025","category":"Income","amount":100,"description":"Salary"},
  {"date":"02-03-2025","category":"Expense","amount":-30,"description":"Rent"},
  {"date":"02-03-2025","category":"Expense","amount":-12.5,"description":"Groceries"}
]
`

// useLedger points the application to a temporary ledger file with content,
// no file is created if content is empty.
func useLedger(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "expenses.json")
	if content != "" {
		require.NoError(t, os.WriteFile(file, []byte(content), 0644))
	}

	oldLedgerFile, oldPrinter := ledgerFile, printer
	ledgerFile = &file
	printer = menu.PlainPrinter
	t.Cleanup(func() { ledgerFile, printer = oldLedgerFile, oldPrinter })
	return file
}

// execute runs c with args and returns its status and output.
func execute(t *testing.T, c subcommands.Command, args ...string) (subcommands.ExitStatus, string) {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse(args))

	var out bytes.Buffer
	old := stdout
	stdout = &out
	defer func() { stdout = old }()

	return c.Execute(context.Background(), f), out.String()
}

func load(t *testing.T, file string) *cashbook.Ledger {
	t.Helper()
	l, err := cashbook.LoadLedger(file)
	require.NoError(t, err)
	return l
}

func TestFmt(t *testing.T) {
	file := useLedger(t, `[{"date": "01-03-2025", "category": "Доход", "amount": 100.0, "description": "Salary"}, {"date": "2-3-2025", "category": "Расход", "amount": -30.0, "description": "Rent"}]`)

	status, out := execute(t, &fmtCmd{})
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "has been formatted")

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	want := `[
  {"date":"01-03-2025","category":"Income","amount":100,"description":"Salary"},
  {"date":"2-3-2025","category":"Expense","amount":-30,"description":"Rent"}
]
`
	assert.Equal(t, want, string(got))
}

func TestFmtKeepsUnreadableFile(t *testing.T) {
	content := `[
  {"date":"01-03-2025","category":"Income","amount":100,"description":"Salary"},
  {"date":"02-03-2025","category":"income","amount":5,"description":"Gift"}
]
`
	file := useLedger(t, content)

	status, out := execute(t, &fmtCmd{})
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.NotContains(t, out, "has been formatted")

	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, content, string(got), "the ledger file must not be rewritten")
}

func TestFmtMissingFile(t *testing.T) {
	file := useLedger(t, "")

	status, _ := execute(t, &fmtCmd{})
	assert.Equal(t, subcommands.ExitSuccess, status)
	got, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(got))
}

func TestAdd(t *testing.T) {
	file := useLedger(t, "")

	status, out := execute(t, &addCmd{}, "-d", "01-03-2025", "-c", "Income", "-a", "1200", "-m", "Salary")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Added record 1")

	status, _ = execute(t, &addCmd{}, "-d", "02-03-2025", "-c", "Expense", "-a", "30")
	assert.Equal(t, subcommands.ExitSuccess, status)

	l := load(t, file)
	require.Equal(t, 2, l.Len())
	r, _ := l.Record(2)
	assert.True(t, cashbook.M(-30).Equal(r.Amount), "got %v", r.Amount)
	assert.Equal(t, "", r.Description)
}

func TestAddInvalid(t *testing.T) {
	file := useLedger(t, "")

	for _, args := range [][]string{
		{"-c", "Gift", "-a", "1"},
		{"-c", "Income", "-a", "-1"},
		{"-c", "Income"},
		{"-c", "Income", "-a", "1", "extra"},
	} {
		status, _ := execute(t, &addCmd{}, args...)
		assert.Equal(t, subcommands.ExitUsageError, status, "add %v", args)
	}
	_, err := os.Stat(file)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "nothing must be saved")
}

func TestEdit(t *testing.T) {
	file := useLedger(t, sampleLedger)

	status, out := execute(t, &editCmd{}, "-a", "35", "2")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Updated record 2")

	r, _ := load(t, file).Record(2)
	assert.Equal(t, "02-03-2025", r.Date)
	assert.Equal(t, "Rent", r.Description)
	assert.True(t, cashbook.M(-35).Equal(r.Amount), "got %v", r.Amount)

	status, _ = execute(t, &editCmd{}, "-c", "Income", "2")
	require.Equal(t, subcommands.ExitSuccess, status)
	r, _ = load(t, file).Record(2)
	assert.True(t, cashbook.M(35).Equal(r.Amount), "changing the category flips the sign, got %v", r.Amount)

	status, _ = execute(t, &editCmd{}, "-a", "1", "7")
	assert.Equal(t, subcommands.ExitUsageError, status)
	status, _ = execute(t, &editCmd{}, "-a", "1")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestDelete(t *testing.T) {
	file := useLedger(t, sampleLedger)

	status, out := execute(t, &deleteCmd{}, "2")
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, `"Rent"`)
	assert.Equal(t, 2, load(t, file).Len())

	status, _ = execute(t, &deleteCmd{}, "3")
	assert.Equal(t, subcommands.ExitFailure, status)
	status, _ = execute(t, &deleteCmd{}, "two")
	assert.Equal(t, subcommands.ExitUsageError, status)
	assert.Equal(t, 2, load(t, file).Len())
}

func TestBalanceAndLists(t *testing.T) {
	useLedger(t, sampleLedger)

	status, out := execute(t, &balanceCmd{})
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Current balance: **57.5**")

	status, out = execute(t, &listCmd{name: "expenses", category: cashbook.Expense})
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "| 3 | 02-03-2025 | Expense | 12.5 | Groceries |")
	assert.NotContains(t, out, "Salary")

	_, out = execute(t, &listCmd{name: "all"})
	assert.Contains(t, out, "## All records")
	assert.Contains(t, out, "Salary")
}

func TestSearch(t *testing.T) {
	useLedger(t, sampleLedger)

	status, out := execute(t, &searchCmd{}, "-category", "Expense", "-amount", "<-20")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "Rent")
	assert.NotContains(t, out, "Groceries")

	_, out = execute(t, &searchCmd{}, "-amount", ">0", "-description", "rent")
	assert.Contains(t, out, "No records match the search.")
}

func TestQuery(t *testing.T) {
	useLedger(t, sampleLedger)

	status, out := execute(t, &queryCmd{}, `$[?(@.category=="Expense")].description`)
	require.Equal(t, subcommands.ExitSuccess, status)
	var got []string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.ElementsMatch(t, []string{"Rent", "Groceries"}, got)

	status, _ = execute(t, &queryCmd{})
	assert.Equal(t, subcommands.ExitUsageError, status)
	status, _ = execute(t, &queryCmd{}, "$[")
	assert.Equal(t, subcommands.ExitUsageError, status)
}

func TestTopic(t *testing.T) {
	useLedger(t, "")

	status, out := execute(t, &topicCmd{}, "-l")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "* `menu`: The interactive menu")

	status, out = execute(t, &topicCmd{}, "search")
	assert.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out, "# Search")

	status, _ = execute(t, &topicCmd{}, "nope")
	assert.Equal(t, subcommands.ExitFailure, status)
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, sub := range Commands {
		assert.Contains(t, c.Sub, sub.Name())
	}
	assert.Contains(t, c.Flags, "ledger-file")
	search := c.Sub["search"]
	for _, name := range []string{"date", "category", "amount", "description"} {
		assert.Contains(t, search.Flags, name)
	}
	assert.ElementsMatch(t, []string{"Income", "Expense"}, c.Sub["add"].Flags["c"].Predict(""))
}
