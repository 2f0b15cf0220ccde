// Package cmd implements the CLI application to reconcile a checkbook
// workbook.
package cmd

import (
	"github.com/etnz/checkbook"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reconcileCmd{}, "")

	c.Register(&recordsCmd{}, "listings")
	c.Register(&schedulesCmd{}, "listings")
}

// Exit codes of the reconcile flow. Scripts depend on them: 1 for a
// usage error, 2 when the workbook cannot be loaded.
const (
	exitUsage       = 1
	exitLoadFailure = 2
)

// loadBook opens the workbook at path into a fresh session.
func loadBook(path string) (*checkbook.Book, error) {
	b := checkbook.NewBook()
	if err := b.Load(path); err != nil {
		return nil, err
	}
	return b, nil
}
