// Package cmd implements the CLI application to manage a cashbook.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/config"
	"github.com/etnz/cashbook/logger"
	"github.com/etnz/cashbook/menu"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands lists the subcommands of the application.
var Commands = []subcommands.Command{
	&menuCmd{},
	&addCmd{},
	&deleteCmd{},
	&editCmd{},
	&balanceCmd{},
	&listCmd{name: "income", category: cashbook.Income},
	&listCmd{name: "expenses", category: cashbook.Expense},
	&listCmd{name: "all"},
	&searchCmd{},
	&fmtCmd{},
	&queryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile = flag.String("config", config.DefaultFile, "Path to the yaml configuration file")
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file, overrides the configuration (default \"expenses.json\")")
	currency   = flag.String("currency", "", "Currency code used to display amounts, overrides the configuration")
	verbose    = flag.Bool("v", false, "Verbose logs")
)

// settings is the loaded configuration, see Setup.
var settings = config.Default()

// stdout is where the commands print their result.
var stdout io.Writer = os.Stdout

// printer displays markdown on stdout.
var printer menu.Printer = terminalPrinter

// Setup applies the global flags: it configures the logger and loads the
// configuration file. It must be called after the flags are parsed.
func Setup() error {
	if err := logger.Setup(*verbose); err != nil {
		return err
	}
	c, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	settings = c
	if *currency != "" {
		if err := cashbook.ValidateCurrency(*currency); err != nil {
			return err
		}
	}
	logger.Debug("configuration loaded", zap.String("file", *configFile), zap.String("ledger", ledgerPath()))
	return nil
}

// ledgerPath returns the ledger file to use, the flag wins over the configuration.
func ledgerPath() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	return settings.LedgerFile
}

func displayCurrency() string {
	if *currency != "" {
		return *currency
	}
	return settings.Currency
}

// OpenStore opens the application ledger file.
func OpenStore() (*cashbook.Store, error) {
	return cashbook.OpenStore(ledgerPath())
}

// terminalPrinter renders markdown for the terminal.
func terminalPrinter(w io.Writer, md string) error {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("could not create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("could not render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func printMarkdown(md string) subcommands.ExitStatus {
	if err := printer(stdout, md); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
