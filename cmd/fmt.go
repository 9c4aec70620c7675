package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file in its canonical form"
}
func (*fmtCmd) Usage() string {
	return `cb fmt

  Reads the ledger file and writes it back in its canonical form: one record
  per line, English category labels. Dates that are not DD-MM-YYYY are reported
  but left untouched. A file that cannot be read as a ledger is left as is.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file := ledgerPath()
	ledger, err := decodeLedgerFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger, file left untouched: %v\n", err)
		return subcommands.ExitFailure
	}

	for i, r := range ledger.All() {
		if !date.Canonical(r.Date) {
			fmt.Fprintf(os.Stderr, "Warning: record %d has a date %q not in DD-MM-YYYY form\n", i, r.Date)
		}
	}

	if err := cashbook.SaveLedger(file, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Ledger file '%s' has been formatted.\n", file)
	return subcommands.ExitSuccess
}

// decodeLedgerFile decodes file strictly: unlike cashbook.LoadLedger a corrupt
// content is an error. A missing file is an empty ledger.
func decodeLedgerFile(file string) (*cashbook.Ledger, error) {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return cashbook.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ledger, err := cashbook.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return ledger, nil
}
