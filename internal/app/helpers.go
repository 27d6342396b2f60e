package app

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// ResolveYear returns year, or the year after now when year is zero
func ResolveYear(year int, now time.Time) (int, error) {
	if year == 0 {
		year = now.Year() + 1
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return year, nil
}

// ParseYear parses a year given on the command line
func ParseYear(s string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidYear, s)
	}
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidYear, year, MinYear, MaxYear)
	}
	return year, nil
}

// ParseFormat validates an output format name. The empty string selects PDF.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatPDF:
		return FormatPDF, nil
	case FormatPNG:
		return FormatPNG, nil
	case FormatTrace:
		return FormatTrace, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the format matching the file extension, or fallback
func FormatFromPath(path string, fallback Format) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF
	case ".png":
		return FormatPNG
	case ".trace":
		return FormatTrace
	}
	return fallback
}

// DefaultFilename names the output year_plan_<year>_<language>.<ext>, or
// year_plan_<year>.<ext> for the fixed table.
func DefaultFilename(year int, labels Labels, format Format) string {
	if labels.Strategy == Fixed {
		return fmt.Sprintf("year_plan_%d.%s", year, format)
	}
	return fmt.Sprintf("year_plan_%d_%s.%s", year, labels.Language, format)
}
