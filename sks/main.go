// Command sks reports on a sukuk and fixed-income crowdfunding portfolio.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/sukuk/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, "sks")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	completion(commander).Complete("sks")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the command line to the shell: subcommands and
// their flags, with book files completed on -book.
func completion(commander *subcommands.Commander) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagPredictors(flag.CommandLine),
	}
	root.Flags["book"] = predict.Files("*.jsonl")

	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: flagPredictors(fs)}
		if c.Name() == "topic" || c.Name() == "help" {
			sub.Args = predict.Set(topicsFor(c.Name(), commander))
		}
		root.Sub[c.Name()] = sub
	})
	return root
}

// flagPredictors predicts values for the flags of fs: nothing for booleans,
// anything for the others.
func flagPredictors(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
