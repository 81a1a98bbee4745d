package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseISODate(t *testing.T) {
	d, err := ParseISODate("2024-03-10")
	assert.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, 10, d.Day())

	_, err = ParseISODate("10/03/2024")
	assert.Error(t, err)

	var dateErr *DateError
	assert.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "INVALID_DATE", dateErr.Code)
}

func TestInDateRange(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		start    string
		end      string
		expected bool
	}{
		{"inside range", "2024-02-15", "2024-01-01", "2024-12-31", true},
		{"on start boundary", "2024-01-01", "2024-01-01", "2024-12-31", true},
		{"on end boundary", "2024-12-31", "2024-01-01", "2024-12-31", true},
		{"before range", "2023-12-31", "2024-01-01", "2024-12-31", false},
		{"after range", "2025-01-01", "2024-01-01", "2024-12-31", false},
		{"open range matches everything", "2024-06-01", "", "", true},
		{"open start", "2024-01-01", "", "2024-06-30", true},
		{"open end", "2024-09-01", "2024-06-30", "", true},
		{"malformed date never matches a bounded range", "not-a-date", "2024-01-01", "2024-12-31", false},
		{"single digit months compare by calendar, not string", "2024-02-05", "2024-01-31", "2024-11-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, InDateRange(tt.date, tt.start, tt.end))
		})
	}
}

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-01", MonthKey("2024-01-05"))
	assert.Equal(t, "2024-12", MonthKey("2024-12-31"))
	// Malformed legacy rows group by raw prefix
	assert.Equal(t, "2024-13", MonthKey("2024-13-99"))
	assert.Equal(t, "x", MonthKey("x"))
}
