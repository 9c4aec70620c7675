package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
	"github.com/google/subcommands"
)

// criterionFlag appends a criterion on a parameter each time the flag is set,
// so that the criteria keep the command line order.
type criterionFlag struct {
	param    cashbook.Param
	criteria *[]cashbook.Criterion
}

func (c criterionFlag) String() string { return "" }

func (c criterionFlag) Set(v string) error {
	*c.criteria = append(*c.criteria, cashbook.Criterion{Param: c.param, Value: v})
	return nil
}

type searchCmd struct {
	criteria []cashbook.Criterion
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search records" }
func (*searchCmd) Usage() string {
	return `cb search [-date <DD-MM-YYYY>] [-category <category>] [-amount <>N|<N|N>] [-description <text>]

  Lists the records matching all the criteria. Flags can be repeated.
  Amount criteria compare the signed amount, expenses are negative. See 'cb topic search'.

Usage Examples:
$ cb search -category Expense -amount "<-50"
$ cb search -description rent
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	for _, p := range cashbook.Params {
		f.Var(criterionFlag{param: p, criteria: &c.criteria}, strings.ToLower(p.String()), fmt.Sprintf("%s criterion", p))
	}
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %v\n", f.Args())
		return subcommands.ExitUsageError
	}
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return printMarkdown(renderer.SearchResults(store.Ledger().Search(c.criteria...), displayCurrency()))
}
