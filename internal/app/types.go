package app

import "time"

// CalendarDay is one in-month date with the attributes the planner draws
type CalendarDay struct {
	Date    time.Time
	Month   int // 1-12
	Day     int // day of month
	Weekday int // 0=Monday ... 6=Sunday
	ISOWeek int
}

// IsWeekend reports whether the day is a Saturday or Sunday
func (d CalendarDay) IsWeekend() bool {
	return d.Weekday >= 5
}

// IsMonday reports whether the day starts an ISO week
func (d CalendarDay) IsMonday() bool {
	return d.Weekday == 0
}

// Key formats the date as YYYY-MM-DD
func (d CalendarDay) Key() string {
	return d.Date.Format(DateLayout)
}

// Format is the output file format
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatPNG   Format = "png"
	FormatTrace Format = "trace" // drawing commands as text, ending in a fingerprint
)

// Result describes a finished render
type Result struct {
	Path     string
	Year     int
	Language string
	Format   Format
	Cells    int

	// Fingerprint of the drawing commands, set for trace output
	Fingerprint string
}
