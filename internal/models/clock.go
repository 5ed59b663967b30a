package models

import "fmt"

// MinutesPerDay is one service day. The literal "00:00" in schedule data
// means the next-day midnight, so it parses to 1440 rather than 0; that is
// how an end-of-service arrival is told apart from a same-day start.
const MinutesPerDay = 1440

// ParseClock converts an "HH:MM" string to minutes since midnight.
// "00:00" maps to 1440. Empty or malformed strings map to 0, matching the
// graph builder's lenient handling of missing times.
func ParseClock(s string) int {
	if s == "" {
		return 0
	}
	if s == "00:00" {
		return MinutesPerDay
	}
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0
	}
	return h*60 + m
}

// FormatClock converts minutes since midnight back to "HH:MM", wrapping
// every 24 hours. 1440 renders as "00:00".
func FormatClock(minutes int) string {
	minutes %= MinutesPerDay
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration renders a duration in minutes as "Xh Ym".
func FormatDuration(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
