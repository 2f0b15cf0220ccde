package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type recordsCmd struct{}

func (*recordsCmd) Name() string     { return "records" }
func (*recordsCmd) Synopsis() string { return "list the ledger records in id order" }
func (*recordsCmd) Usage() string {
	return `cbk records <file.xlsx>

  Prints the ledger records in ascending id order, without modifying the
  workbook.
`
}

func (*recordsCmd) SetFlags(*flag.FlagSet) {}

func (c *recordsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	book, err := loadBook(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error, could not load file! %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(recordsMarkdown(book))
	return subcommands.ExitSuccess
}
