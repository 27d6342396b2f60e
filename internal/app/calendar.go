package app

import (
	"iter"
	"time"
)

// weekdayIndex maps time.Weekday to a Monday-first index (Monday=0 ... Sunday=6)
func weekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

// MonthDates yields every date of the full Monday-first weeks covering the
// month, including the leading and trailing days of adjacent months.
func MonthDates(year int, month time.Month) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		// Noon keeps AddDate clear of DST transitions
		first := time.Date(year, month, 1, 12, 0, 0, 0, time.UTC)
		last := first.AddDate(0, 1, -1)

		start := first.AddDate(0, 0, -weekdayIndex(first.Weekday()))
		end := last.AddDate(0, 0, 6-weekdayIndex(last.Weekday()))

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// MonthDays yields the days that belong to the month, dropping the padding
// that MonthDates adds around it.
func MonthDays(year int, month time.Month) iter.Seq[CalendarDay] {
	return func(yield func(CalendarDay) bool) {
		for d := range MonthDates(year, month) {
			if d.Month() != month {
				continue
			}
			_, week := d.ISOWeek()
			day := CalendarDay{
				Date:    d,
				Month:   int(month),
				Day:     d.Day(),
				Weekday: weekdayIndex(d.Weekday()),
				ISOWeek: week,
			}
			if !yield(day) {
				return
			}
		}
	}
}

// YearDays yields every day of the year in order
func YearDays(year int) iter.Seq[CalendarDay] {
	return func(yield func(CalendarDay) bool) {
		for m := time.January; m <= time.December; m++ {
			for day := range MonthDays(year, m) {
				if !yield(day) {
					return
				}
			}
		}
	}
}

// DaysInYear returns 366 for leap years and 365 otherwise
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// IsLeapYear reports whether year is a Gregorian leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
