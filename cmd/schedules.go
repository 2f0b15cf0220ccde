package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type schedulesCmd struct{}

func (*schedulesCmd) Name() string     { return "schedules" }
func (*schedulesCmd) Synopsis() string { return "list the recurring schedule entries in id order" }
func (*schedulesCmd) Usage() string {
	return `cbk schedules <file.xlsx>

  Prints the recurring schedule entries in ascending id order, without
  modifying the workbook.
`
}

func (*schedulesCmd) SetFlags(*flag.FlagSet) {}

func (c *schedulesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error, could not load file! %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(schedulesMarkdown(book))
	return subcommands.ExitSuccess
}
