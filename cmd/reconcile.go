package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type reconcileCmd struct{}

func (*reconcileCmd) Name() string { return "reconcile" }
func (*reconcileCmd) Synopsis() string {
	return "mark every ledger record posted and recompute running balances"
}
func (*reconcileCmd) Usage() string {
	return `cbk reconcile <file.xlsx>

  Loads the workbook, marks every ledger record posted, recomputes the
  running balance in id order from the first record's stored balance, and
  writes the workbook back. The previous file is kept as a timestamped
  "_bak_" sibling.
`
}

func (*reconcileCmd) SetFlags(*flag.FlagSet) {}

func (c *reconcileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage %s <file_path>\n", os.Args[0])
		return subcommands.ExitStatus(exitUsage)
	}

	book, err := loadBook(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error, could not load file! %v\n", err)
		return subcommands.ExitStatus(exitLoadFailure)
	}
	fmt.Println("Loaded App!")

	if !book.Reconcile() {
		fmt.Println("No rows in Ledger!")
	}
	fmt.Println("Modifications Done!")

	// A failed save is reported but does not fail the run: the previous
	// workbook was already rotated aside and remains restorable.
	if err := book.Save(); err != nil {
		fmt.Printf("Error Saving! %v\n", err)
	} else {
		fmt.Println("Saved!")
	}

	fmt.Println("Done!")
	return subcommands.ExitSuccess
}
