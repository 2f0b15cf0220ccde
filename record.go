package checkbook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is a single posted ledger transaction.
//
// Amount follows the bank-statement sign convention: negative is a debit
// (money out), positive is a credit (money in). Balance is the running
// account balance as of this record.
type Record struct {
	ID       uint32
	Posted   bool
	Name     string
	Amount   decimal.Decimal
	Balance  decimal.Decimal
	Category string
	Notes    string
	Date     Date
	Modified bool
}

// Columns of the "Ledger" sheet, in workbook order.
const (
	recDate = iota
	recPosted
	recName
	recDebit
	recCredit
	recBalance
	recCategory
	recNotes
	recID
	recordColumns
)

// RecordHeader is the header row of the "Ledger" sheet.
var RecordHeader = []string{"Date", "Posted", "Name", "Debit", "Credit", "Balance", "Category", "Notes", "ID"}

// Row projects the record onto its workbook row. It is total: every
// field has a string form.
//
// The amount splits into the debit/credit cell pair; at most one of the
// two carries a non-zero value (a zero amount writes "0.00" in both).
func (r *Record) Row() []string {
	row := make([]string, recordColumns)
	row[recDate] = r.Date.String()
	if r.Posted {
		row[recPosted] = "x"
	}
	row[recName] = r.Name
	if r.Amount.Sign() <= 0 {
		row[recDebit] = cellAmount(r.Amount.Abs())
	}
	if r.Amount.Sign() >= 0 {
		row[recCredit] = cellAmount(r.Amount.Abs())
	}
	row[recBalance] = cellAmount(r.Balance)
	row[recCategory] = r.Category
	row[recNotes] = r.Notes
	row[recID] = strconv.FormatUint(uint64(r.ID), 10)
	return row
}

// RecordFromRow rebuilds a record from its workbook row.
//
// Parsing is lenient: monetary cells that do not parse count as zero
// (amount = credit − debit), and an id that does not parse counts as 0,
// so malformed rows may collide on the same key. The date is the one
// field that must parse: a record cannot exist without its date, and the
// whole load gives up on it.
func RecordFromRow(row []string) (*Record, error) {
	row = pad(row, recordColumns)
	day, err := ParseDate(row[recDate])
	if err != nil {
		return nil, fmt.Errorf("record %q: %w", row[recName], err)
	}
	return &Record{
		ID:       parseID(row[recID]),
		Posted:   row[recPosted] == "x",
		Name:     row[recName],
		Amount:   parseAmount(row[recCredit]).Sub(parseAmount(row[recDebit])),
		Balance:  parseAmount(row[recBalance]),
		Category: row[recCategory],
		Notes:    row[recNotes],
		Date:     day,
	}, nil
}

// parseID reads an id cell, defaulting to 0 on malformed input.
func parseID(s string) uint32 {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0
	}
	return uint32(id)
}

// pad extends row with empty cells up to n columns: workbook readers
// trim trailing blank cells.
func pad(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	padded := make([]string, n)
	copy(padded, row)
	return padded
}
