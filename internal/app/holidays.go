package app

import (
	"fmt"
	"strings"
	"time"
)

// Holiday regions
const (
	RegionNone    = ""
	RegionGermany = "de"
	RegionNRW     = "nrw"
)

// Holidays returns the public holidays of a region keyed by YYYY-MM-DD.
// The empty region has no holidays.
func Holidays(region string, year int) (map[string]string, error) {
	switch strings.ToLower(region) {
	case RegionNone:
		return map[string]string{}, nil
	case RegionGermany:
		return GermanHolidays(year), nil
	case RegionNRW:
		return NRWHolidays(year), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRegion, region)
	}
}

// GermanHolidays returns the nationwide public holidays in Germany
func GermanHolidays(year int) map[string]string {
	holidays := make(map[string]string)

	// Fixed holidays
	holidays[formatDate(year, 1, 1)] = "Neujahr"
	holidays[formatDate(year, 5, 1)] = "Tag der Arbeit"
	holidays[formatDate(year, 10, 3)] = "Tag der Deutschen Einheit"
	holidays[formatDate(year, 12, 25)] = "1. Weihnachtstag"
	holidays[formatDate(year, 12, 26)] = "2. Weihnachtstag"

	// Easter-based holidays (movable)
	easter := calculateEaster(year)
	holidays[formatDateFromTime(easter.AddDate(0, 0, -2))] = "Karfreitag"
	holidays[formatDateFromTime(easter.AddDate(0, 0, 1))] = "Ostermontag"
	holidays[formatDateFromTime(easter.AddDate(0, 0, 39))] = "Christi Himmelfahrt"
	holidays[formatDateFromTime(easter.AddDate(0, 0, 50))] = "Pfingstmontag"

	return holidays
}

// NRWHolidays returns all public holidays in North Rhine-Westphalia
func NRWHolidays(year int) map[string]string {
	holidays := GermanHolidays(year)

	holidays[formatDate(year, 11, 1)] = "Allerheiligen"
	// Fronleichnam (Corpus Christi): Easter + 60 days
	holidays[formatDateFromTime(calculateEaster(year).AddDate(0, 0, 60))] = "Fronleichnam"

	return holidays
}

// calculateEaster calculates Easter Sunday using the Meeus/Jones/Butcher algorithm
func calculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	// Use noon to avoid timezone issues when formatting to YYYY-MM-DD
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC)
}

func formatDate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 12, 0, 0, 0, time.UTC).Format(DateLayout)
}

func formatDateFromTime(t time.Time) string {
	return t.Format(DateLayout)
}
