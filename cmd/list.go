package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "show the current balance" }
func (*balanceCmd) Usage() string {
	return `cb balance

  Shows the balance, the sum of all incomes minus all expenses, and the totals.
`
}

func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return printMarkdown(renderer.BalanceMarkdown(store.Ledger(), displayCurrency()))
}

// listCmd lists the records of a category, or all records when category is empty.
type listCmd struct {
	name     string
	category cashbook.Category
}

func (c *listCmd) Name() string { return c.name }
func (c *listCmd) Synopsis() string {
	switch c.category {
	case cashbook.Income:
		return "list all incomes"
	case cashbook.Expense:
		return "list all expenses"
	}
	return "list all records"
}
func (c *listCmd) Usage() string {
	return fmt.Sprintf(`cb %s

  %s, with their position.
`, c.name, c.Synopsis())
}

func (*listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	l := store.Ledger()
	title, seq := "All records", l.All()
	if c.category != "" {
		title, seq = c.category.String(), l.ByCategory(c.category)
	}
	return printMarkdown(renderer.RenderRecords(renderer.NewTable(title, displayCurrency(), seq).WithPositions()))
}
