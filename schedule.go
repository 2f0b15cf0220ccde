package checkbook

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

// Schedule is a recurring transaction template: a named amount repeating
// on an interval from a start date, optionally until an end date.
type Schedule struct {
	ID       uint32
	Name     string
	Category string
	Interval Interval
	Amount   decimal.Decimal
	Active   bool
	Start    Date
	End      Date // IsZero means open-ended.
	Modified bool
}

// Columns of the "Schedule" sheet, in workbook order.
const (
	schName = iota
	schCategory
	schInterval
	schAmount
	schStart
	schEnd
	schID
	scheduleColumns
)

// ScheduleHeader is the header row of the "Schedule" sheet.
var ScheduleHeader = []string{"Name", "Category", "Interval", "Amount", "Start", "End", "ID"}

// Row projects the schedule onto its workbook row. The Active flag has
// no column and is not persisted.
func (s *Schedule) Row() []string {
	row := make([]string, scheduleColumns)
	row[schName] = s.Name
	row[schCategory] = s.Category
	row[schInterval] = s.Interval.String()
	row[schAmount] = cellAmount(s.Amount)
	row[schStart] = s.Start.String()
	if !s.End.IsZero() {
		row[schEnd] = s.End.String()
	}
	row[schID] = strconv.FormatUint(uint64(s.ID), 10)
	return row
}

// ScheduleFromRow rebuilds a schedule from its workbook row.
//
// An interval cell that does not parse falls back to monthly, and a
// malformed amount counts as zero. The start date must parse; the end
// date is optional and dropped when malformed. Every loaded schedule
// starts active, since Active is not a workbook column.
func ScheduleFromRow(row []string) (*Schedule, error) {
	row = pad(row, scheduleColumns)
	start, err := ParseDate(row[schStart])
	if err != nil {
		return nil, fmt.Errorf("schedule %q: %w", row[schName], err)
	}
	interval, err := ParseInterval(row[schInterval])
	if err != nil {
		interval = Monthly(1)
	}
	s := &Schedule{
		ID:       parseID(row[schID]),
		Name:     row[schName],
		Category: row[schCategory],
		Interval: interval,
		Amount:   parseAmount(row[schAmount]),
		Active:   true,
		Start:    start,
	}
	if end, err := ParseDate(row[schEnd]); err == nil {
		s.End = end
	}
	return s, nil
}
