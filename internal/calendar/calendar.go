// Package calendar generates the availability month grids used by the
// booking flows. All dates are ISO calendar-date strings (no time component)
// so that comparisons stay timezone-free; internally arithmetic runs on UTC
// midnights.
package calendar

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// MonthLayout is the wire format for a displayed month.
const MonthLayout = "2006-01"

// GridSize is the fixed cell count of a month grid: 6 rows of 7 columns.
// Every month fits, so the layout never reflows between months.
const GridSize = 42

// Day is one cell of a month grid, recomputed on every render.
type Day struct {
	Date           string `json:"date"`
	InCurrentMonth bool   `json:"in_current_month"`
	Disabled       bool   `json:"disabled"`
}

// Window is an inclusive validity range supplied by the chosen package,
// for example a craft event's start and end dates. The zero value is inactive.
type Window struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// Active reports whether the window constrains day selection.
func (w Window) Active() bool {
	return w.Start != "" && w.End != ""
}

// Contains reports whether date falls within [Start, End]. ISO date strings
// order lexicographically, so plain string comparison is chronological.
func (w Window) Contains(date string) bool {
	return date >= w.Start && date <= w.End
}

// ParseDate parses an ISO calendar date into a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t.UTC(), nil
}

// FormatDate formats a time as an ISO calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current date in UTC as an ISO string.
func Today() string {
	return time.Now().UTC().Format(DateLayout)
}

// ParseMonth resolves a "YYYY-MM" month query to the first of that month.
// An empty query resolves to the month containing now.
func ParseMonth(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return MonthOf(now), nil
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t.UTC(), nil
}

// MonthOf returns the first calendar day of the month containing t.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths advances (or retreats, for negative n) a month start by exactly
// n calendar months.
func AddMonths(month time.Time, n int) time.Time {
	return month.AddDate(0, n, 0)
}

// Grid builds the 42-cell grid for the month beginning at monthStart.
// Filler cells from the adjacent months are never selectable, independent of
// any validity window. A current-month day is disabled iff it is strictly
// before today or it falls outside an active window.
func Grid(monthStart time.Time, today string, window Window) []Day {
	first := MonthOf(monthStart)
	startWeekday := int(first.Weekday()) // 0 = Sunday
	daysInMonth := first.AddDate(0, 1, -1).Day()

	days := make([]Day, 0, GridSize)

	// Leading filler from the previous month.
	for i := startWeekday; i > 0; i-- {
		days = append(days, Day{
			Date:     FormatDate(first.AddDate(0, 0, -i)),
			Disabled: true,
		})
	}

	for i := 0; i < daysInMonth; i++ {
		date := FormatDate(first.AddDate(0, 0, i))
		disabled := date < today || (window.Active() && !window.Contains(date))
		days = append(days, Day{
			Date:           date,
			InCurrentMonth: true,
			Disabled:       disabled,
		})
	}

	// Trailing filler from the next month up to the fixed grid size.
	next := first.AddDate(0, 1, 0)
	for i := 0; len(days) < GridSize; i++ {
		days = append(days, Day{
			Date:     FormatDate(next.AddDate(0, 0, i)),
			Disabled: true,
		})
	}

	return days
}

// Selectable reports whether date is an enabled current-month day in the grid
// rules, without materializing a grid.
func Selectable(date, today string, window Window) bool {
	if date < today {
		return false
	}
	if window.Active() && !window.Contains(date) {
		return false
	}
	return true
}

// EndFor derives the stay end date from a start date and a fixed package
// duration: start + (duration - 1) days. Durations below one day count as a
// single day.
func EndFor(start string, durationDays int) (string, error) {
	t, err := ParseDate(start)
	if err != nil {
		return "", err
	}
	if durationDays < 1 {
		durationDays = 1
	}
	return FormatDate(t.AddDate(0, 0, durationDays-1)), nil
}
