package main

import (
	"github.com/etnz/sukuk/docs"
	"github.com/google/subcommands"
)

// topicsFor lists the arguments of the 'topic' and 'help' commands.
func topicsFor(name string, commander *subcommands.Commander) []string {
	var args []string
	if name == "help" {
		commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
			args = append(args, c.Name())
		})
		return args
	}
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme", "*")
}
