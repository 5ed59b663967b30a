package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Morning time", input: "08:00", expected: 480},
		{name: "Single digit minutes", input: "09:05", expected: 545},
		{name: "Late evening", input: "23:59", expected: 1439},
		{name: "Midnight means next day", input: "00:00", expected: 1440},
		{name: "One past midnight is same day", input: "00:01", expected: 1},
		{name: "Empty string", input: "", expected: 0},
		{name: "Garbage", input: "not-a-time", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseClock(tt.input))
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		name     string
		minutes  int
		expected string
	}{
		{name: "Morning", minutes: 480, expected: "08:00"},
		{name: "Next-day midnight wraps", minutes: 1440, expected: "00:00"},
		{name: "Past midnight wraps", minutes: 1470, expected: "00:30"},
		{name: "Negative wraps backwards", minutes: -30, expected: "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatClock(tt.minutes))
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, clock := range []string{"05:15", "12:00", "23:59"} {
		assert.Equal(t, clock, FormatClock(ParseClock(clock)))
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0h 33m", FormatDuration(33))
	assert.Equal(t, "1h 10m", FormatDuration(70))
	assert.Equal(t, "2h 0m", FormatDuration(120))
}
