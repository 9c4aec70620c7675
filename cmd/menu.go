package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/cashbook/menu"
	"github.com/google/subcommands"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "interactive menu (default)" }
func (*menuCmd) Usage() string {
	return `cb menu

  Opens the interactive menu to add, edit, delete, list and search records.
  This is what cb does when run without a subcommand. See 'cb topic menu'.
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	m := menu.New(stdout, os.Stdin, store, displayCurrency())
	m.Print = printer
	if err := m.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// RunMenu runs the menu command, it is the default when no subcommand is given.
func RunMenu(ctx context.Context) subcommands.ExitStatus {
	return (&menuCmd{}).Execute(ctx, flag.NewFlagSet("menu", flag.ContinueOnError))
}
