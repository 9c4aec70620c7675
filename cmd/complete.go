package cmd

import (
	"flag"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion: the global
// flags, every subcommand and its flags.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	for _, c := range Commands {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)
		root.Sub[c.Name()] = &complete.Command{
			Flags: flagPredictors(f),
			Args:  argsPredictor(c),
		}
	}
	return root
}

func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		flags[fl.Name] = flagPredictor(fl)
	})
	return flags
}

func flagPredictor(fl *flag.Flag) complete.Predictor {
	switch fl.Name {
	case "ledger-file":
		return predict.Files("*.json")
	case "config":
		return predict.Files("*.yaml")
	case "c", "category":
		return predict.Set{string(cashbook.Income), string(cashbook.Expense)}
	}
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	return predict.Something
}

func argsPredictor(c subcommands.Command) complete.Predictor {
	if c.Name() != "topic" {
		return predict.Nothing
	}
	topics, err := docs.GetAllTopics()
	if err != nil {
		return predict.Nothing
	}
	return predict.Set(topics)
}
