package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/google/subcommands"
)

// recordFlags are the fields of a record given on the command line.
type recordFlags struct {
	date        string
	category    string
	amount      string
	description string
}

func (r *recordFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.date, "d", date.TodayKeyword, "Date DD-MM-YYYY, 0 for today")
	f.StringVar(&r.category, "c", "", "Category: Income or Expense")
	f.StringVar(&r.amount, "a", "", "Amount, a non-negative number")
	f.StringVar(&r.description, "m", "", "Description")
}

// values parses the flags, fields not set on the command line are taken from base.
func (r *recordFlags) values(f *flag.FlagSet, base cashbook.Record) (d string, c cashbook.Category, a cashbook.Money, desc string, err error) {
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	d, c, a, desc = base.Date, base.Category, base.Magnitude(), base.Description
	if set["d"] || d == "" {
		d = date.Resolve(r.date)
		if !date.Canonical(d) {
			fmt.Fprintf(os.Stderr, "Warning: %q is not a DD-MM-YYYY date, it is stored as typed.\n", d)
		}
	}
	if set["c"] || c == "" {
		if c, err = cashbook.ParseCategory(r.category); err != nil {
			return
		}
	}
	if set["a"] || base.Category == "" {
		if a, err = cashbook.ParseAmount(r.amount); err != nil {
			return
		}
	}
	if set["m"] {
		desc = r.description
	}
	return
}

// position parses the single argument as a record position.
func position(f *flag.FlagSet) (int, error) {
	if f.NArg() != 1 {
		return 0, fmt.Errorf("expected exactly one record position, got %d arguments", f.NArg())
	}
	i, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		return 0, fmt.Errorf("invalid record position %q", f.Arg(0))
	}
	return i, nil
}

type addCmd struct {
	recordFlags
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a record" }
func (*addCmd) Usage() string {
	return `cb add -c <category> -a <amount> [-d <date>] [-m <description>]

  Appends a record to the ledger. Expenses are stored with a negative amount.

Usage Examples:
$ cb add -c Income -a 1200 -m "Salary"
$ cb add -d 02-03-2025 -c Expense -a 30 -m "Rent"
`
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", f.Args())
		return subcommands.ExitUsageError
	}
	d, cat, a, desc, err := c.values(f, cashbook.Record{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r, err := store.Create(d, cat, a, desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Added record %d: %s %s %s %q\n", store.Ledger().Len(), r.Date, r.Category, r.Magnitude().Format(displayCurrency()), r.Description)
	return subcommands.ExitSuccess
}

type editCmd struct {
	recordFlags
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "replace the fields of a record" }
func (*editCmd) Usage() string {
	return `cb edit [-d <date>] [-c <category>] [-a <amount>] [-m <description>] <position>

  Changes the record at position (see 'cb all'). Fields without a flag are kept.

Usage Examples:
$ cb edit -a 35 -m "Rent, March" 2
`
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	i, err := position(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	base, err := store.Ledger().Record(i)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	d, cat, a, desc, err := c.values(f, base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	r, err := store.Update(i, d, cat, a, desc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Updated record %d: %s %s %s %q\n", i, r.Date, r.Category, r.Magnitude().Format(displayCurrency()), r.Description)
	return subcommands.ExitSuccess
}

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a record" }
func (*deleteCmd) Usage() string {
	return `cb delete <position>

  Deletes the record at position (see 'cb all'). The following records move up by one.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	i, err := position(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	r, err := store.Delete(i)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Deleted record %d: %s %s %s %q\n", i, r.Date, r.Category, r.Magnitude().Format(displayCurrency()), r.Description)
	return subcommands.ExitSuccess
}
