package checkbook

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// IntervalUnit defines the calendar unit a schedule repeats on.
type IntervalUnit int

const (
	// Week repeats every Count weeks.
	Week IntervalUnit = iota
	// Month repeats every Count months.
	Month
)

func (u IntervalUnit) String() string {
	switch u {
	case Week:
		return "Week"
	case Month:
		return "Month"
	default:
		return "unknown"
	}
}

// Errors distinguishing why an interval failed to parse.
var (
	ErrInvalidFormat       = errors.New("invalid format")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrInvalidIntervalType = errors.New("invalid interval type")
)

// Interval is a schedule recurrence, like "every 2 weeks".
type Interval struct {
	Unit  IntervalUnit
	Count uint16
}

// Weekly returns an interval repeating every count weeks.
func Weekly(count uint16) Interval { return Interval{Unit: Week, Count: count} }

// Monthly returns an interval repeating every count months.
func Monthly(count uint16) Interval { return Interval{Unit: Month, Count: count} }

// String renders the interval in its workbook form, like "2 Weeks" or
// "1 Month". The unit is singular exactly when the count is 1.
func (i Interval) String() string {
	if i.Count == 1 {
		return fmt.Sprintf("%d %s", i.Count, i.Unit)
	}
	return fmt.Sprintf("%d %ss", i.Count, i.Unit)
}

// ParseInterval parses an interval from its workbook form: a non-negative
// count and a unit ("week"/"weeks"/"month"/"months", case-insensitive)
// separated by whitespace.
func ParseInterval(s string) (Interval, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Interval{}, fmt.Errorf("interval %q: %w", s, ErrInvalidFormat)
	}
	count, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Interval{}, fmt.Errorf("interval %q: %w", s, ErrInvalidNumber)
	}
	switch strings.ToLower(parts[1]) {
	case "week", "weeks":
		return Weekly(uint16(count)), nil
	case "month", "months":
		return Monthly(uint16(count)), nil
	default:
		return Interval{}, fmt.Errorf("interval %q: %w", s, ErrInvalidIntervalType)
	}
}
