package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/etnz/cashbook/cmd"
	"github.com/etnz/cashbook/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not load .env", zap.Error(err))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// exits when invoked by the shell for completion
	cmd.Completion().Complete("cb")

	flag.Parse()
	if err := cmd.Setup(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	ctx := context.Background()
	var status subcommands.ExitStatus
	if flag.NArg() == 0 {
		status = cmd.RunMenu(ctx)
	} else {
		status = commander.Execute(ctx)
	}
	logger.Sync()
	os.Exit(int(status))
}
