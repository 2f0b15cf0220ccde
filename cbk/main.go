package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/etnz/checkbook/cmd"
	"github.com/google/subcommands"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage %s <file_path>\n", os.Args[0])
		os.Exit(1)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// `cbk ledger.xlsx` is the historical invocation: a bare workbook
	// path means reconcile.
	os.Args = defaultToReconcile(os.Args, func(name string) bool {
		return isCommand(commander, name)
	})

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// isCommand reports whether name is a registered subcommand.
func isCommand(c *subcommands.Commander, name string) bool {
	known := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, sub subcommands.Command) {
		if sub.Name() == name {
			known = true
		}
	})
	return known
}

// defaultToReconcile turns a bare `cbk <path>` invocation into
// `cbk reconcile <path>`: a single argument that is neither a registered
// command nor a flag is a workbook path, whatever its extension or case.
func defaultToReconcile(args []string, isCommand func(string) bool) []string {
	if len(args) != 2 || isCommand(args[1]) || strings.HasPrefix(args[1], "-") {
		return args
	}
	return append([]string{args[0], "reconcile"}, args[1:]...)
}
