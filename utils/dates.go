package utils

import (
	"fmt"
	"time"
)

// ISODateFormat is the serialization format for every date stored in the
// database. Comparison always goes through time.Time, never through the
// raw strings.
const ISODateFormat = "2006-01-02"

// DateError represents an invalid date value
type DateError struct {
	Code    string
	Message string
}

func (e *DateError) Error() string {
	return e.Message
}

// ParseISODate parses a stored YYYY-MM-DD date string
func ParseISODate(value string) (time.Time, error) {
	t, err := time.Parse(ISODateFormat, value)
	if err != nil {
		return time.Time{}, &DateError{
			Code:    "INVALID_DATE",
			Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value),
		}
	}
	return t, nil
}

// ValidISODate reports whether value is a well-formed YYYY-MM-DD date
func ValidISODate(value string) bool {
	_, err := ParseISODate(value)
	return err == nil
}

// InDateRange reports whether date falls inside the inclusive [start, end]
// range. Empty bounds are open. A date that does not parse never matches a
// bounded range.
func InDateRange(date, start, end string) bool {
	if start == "" && end == "" {
		return true
	}

	d, err := ParseISODate(date)
	if err != nil {
		return false
	}
	if start != "" {
		s, err := ParseISODate(start)
		if err != nil || d.Before(s) {
			return false
		}
	}
	if end != "" {
		e, err := ParseISODate(end)
		if err != nil || d.After(e) {
			return false
		}
	}
	return true
}

// MonthKey returns the YYYY-MM grouping key for a stored date
func MonthKey(date string) string {
	if t, err := ParseISODate(date); err == nil {
		return t.Format("2006-01")
	}
	// Malformed legacy rows still group by their raw prefix
	if len(date) >= 7 {
		return date[:7]
	}
	return date
}
