package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/checkbook"
)

// printMarkdown renders markdown to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// Fall back to the raw markdown, still perfectly readable.
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// recordsMarkdown renders the ledger records as a markdown table, in
// ascending id order.
func recordsMarkdown(book *checkbook.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ledger (%s)\n\n", book.Path())
	fmt.Fprintln(&b, "| ID | Date | Posted | Name | Amount | Balance | Category | Notes |")
	fmt.Fprintln(&b, "|---:|:---|:---:|:---|---:|---:|:---|:---|")
	for _, r := range book.Records() {
		posted := ""
		if r.Posted {
			posted = "x"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			r.ID, r.Date, posted, r.Name,
			checkbook.DisplayAmount(r.Amount), checkbook.DisplayAmount(r.Balance),
			r.Category, r.Notes)
	}
	return b.String()
}

// schedulesMarkdown renders the schedule entries as a markdown table, in
// ascending id order.
func schedulesMarkdown(book *checkbook.Book) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Schedule (%s)\n\n", book.Path())
	fmt.Fprintln(&b, "| ID | Name | Category | Interval | Amount | Start | End |")
	fmt.Fprintln(&b, "|---:|:---|:---|:---|---:|:---|:---|")
	for _, s := range book.Schedules() {
		end := ""
		if !s.End.IsZero() {
			end = s.End.String()
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s |\n",
			s.ID, s.Name, s.Category, s.Interval,
			checkbook.DisplayAmount(s.Amount), s.Start, end)
	}
	return b.String()
}
