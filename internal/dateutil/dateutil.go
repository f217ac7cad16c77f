// Package dateutil derives calendar dates from metadata timestamps and
// formats them for display.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors for date handling.
var (
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrInvalidDate       = errors.New("invalid date")
)

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is the display format used when none is configured.
const DefaultDateFormat = "YYYY-MM-DD"

// CalendarDateLayout is the Go layout of a derived calendar date.
// Dates in this layout sort chronologically as plain strings.
const CalendarDateLayout = "2006-01-02"

// timeSeparators are the characters that may separate the date and time
// parts of an ISO-8601 timestamp.
const timeSeparators = "Tt "

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "YYYY-MM-DD",
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10) // Pre-allocate with some buffer

	i := 0
	for i < len(format) {
		// Handle bracket-escaped literal text
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			// Copy content inside brackets literally
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2 // Skip past closing bracket
			continue
		}

		matched := false

		// Try to match tokens (longest first due to slice order)
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			// Preserve literal character
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// CalendarDate returns the date part of an ISO-8601 timestamp: the text
// before the first time separator. The result is always a valid
// YYYY-MM-DD date, so callers can order dates by string comparison.
// Returns ErrInvalidDate otherwise.
func CalendarDate(timestamp string) (string, error) {
	ts := strings.TrimSpace(timestamp)
	date := ts
	if i := strings.IndexAny(ts, timeSeparators); i >= 0 {
		date = ts[:i]
	}
	if len(date) != len(CalendarDateLayout) {
		return "", fmt.Errorf("%w: %q (want YYYY-MM-DD or an ISO-8601 timestamp)", ErrInvalidDate, timestamp)
	}
	if _, err := time.Parse(CalendarDateLayout, date); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, timestamp, err)
	}
	return date, nil
}

// ResolveFormat expands a preset name to its token format and validates it.
// Returns the Go layout for the format.
func ResolveFormat(format string) (string, error) {
	if format == "" {
		format = DefaultDateFormat
	}
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	return ParseDateFormat(format)
}

// FormatCalendarDate renders a YYYY-MM-DD date using a token format or preset.
func FormatCalendarDate(date, format string) (string, error) {
	goFmt, err := ResolveFormat(format)
	if err != nil {
		return "", err
	}
	t, err := time.Parse(CalendarDateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}
	return t.Format(goFmt), nil
}
