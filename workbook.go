package checkbook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook.
const (
	LedgerSheet   = "Ledger"
	ScheduleSheet = "Schedule"
)

// workbookExt is the only extension rotated to a backup before a save.
const workbookExt = ".xlsx"

// backupTimeFormat stamps backup file names at second granularity:
// month-day-year-hour-minute-second.
const backupTimeFormat = "01-02-2006-15-04-05"

// Load reads the workbook at path into the book, and remembers the path
// for Save.
//
// A collection is replaced only when its sheet is present: loading a
// workbook with no "Schedule" sheet leaves the schedules untouched.
func (b *Book) Load(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	defer f.Close()

	b.path = path

	if rows, err := sheetRows(f, LedgerSheet); err != nil {
		return err
	} else if rows != nil {
		if err := b.loadRecords(rows); err != nil {
			return fmt.Errorf("sheet %q: %w", LedgerSheet, err)
		}
	}
	if rows, err := sheetRows(f, ScheduleSheet); err != nil {
		return err
	} else if rows != nil {
		if err := b.loadSchedules(rows); err != nil {
			return fmt.Errorf("sheet %q: %w", ScheduleSheet, err)
		}
	}
	return nil
}

// sheetRows returns the rows of a sheet, or a nil slice when the sheet
// does not exist in the workbook.
func sheetRows(f *excelize.File, sheet string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		var missing excelize.ErrSheetNotExist
		if errors.As(err, &missing) {
			return nil, nil
		}
		return nil, fmt.Errorf("sheet %q: %w", sheet, err)
	}
	// An empty sheet still counts as present: GetRows returns no rows
	// but no error, and the caller must wipe its collection.
	if rows == nil {
		rows = [][]string{}
	}
	return rows, nil
}

// Save writes the book back to the file it was loaded from, moving any
// existing file aside first.
//
// The backup is a rename, not a copy. If the final write fails the
// original data still lives in the "{stem}_bak_{timestamp}.xlsx" sibling
// and can be restored by renaming it back.
func (b *Book) Save() error { return b.SaveAs(b.path) }

// SaveAs is Save to an explicit destination path.
func (b *Book) SaveAs(path string) error {
	if err := rotateBackup(path); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	// The fresh workbook starts with a default sheet; make it the ledger.
	if err := f.SetSheetName(f.GetSheetName(0), LedgerSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(ScheduleSheet); err != nil {
		return err
	}
	if err := writeSheet(f, LedgerSheet, RecordHeader, rowsOf(b.Records())); err != nil {
		return err
	}
	if err := writeSheet(f, ScheduleSheet, ScheduleHeader, rowsOf(b.Schedules())); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write workbook %q: %w", path, err)
	}
	return nil
}

// rotateBackup moves an existing destination aside under a timestamped
// name. A rename failure aborts the whole save: overwriting live data
// that could not be backed up is not an option.
func rotateBackup(path string) error {
	if filepath.Ext(path) != workbookExt {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	stem := strings.TrimSuffix(filepath.Base(path), workbookExt)
	name := fmt.Sprintf("%s_bak_%s%s", stem, time.Now().Format(backupTimeFormat), workbookExt)
	if err := os.Rename(path, filepath.Join(filepath.Dir(path), name)); err != nil {
		return fmt.Errorf("cannot back up %q: %w", path, err)
	}
	return nil
}

type rower interface{ Row() []string }

func rowsOf[T rower](entities []T) [][]string {
	rows := make([][]string, 0, len(entities))
	for _, e := range entities {
		rows = append(rows, e.Row())
	}
	return rows
}

// writeSheet writes the bold header row then one row per entity,
// starting on the second row.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]string) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
