package utils

import (
	"fmt"
	"time"
)

func FormatDuration(duration time.Duration) string {
	hours := int(duration.Hours())
	minutes := int(duration.Minutes()) % 60
	seconds := int(duration.Seconds()) % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}

func FormatTimeISO(t time.Time) string {
	return t.Format(time.RFC3339)
}

func ParseTimeISO(timeStr string) (time.Time, error) {
	return time.Parse(time.RFC3339, timeStr)
}

// DurationMinutesCeil returns the number of billable minutes between entry
// and exit. Partial minutes count as a full minute, so a stay of 61m12s is
// billed as 62 minutes.
func DurationMinutesCeil(entry, exit time.Time) int {
	elapsed := exit.Sub(entry)
	if elapsed <= 0 {
		return 0
	}

	minutes := int(elapsed / time.Minute)
	if elapsed%time.Minute > 0 {
		minutes++
	}
	return minutes
}

func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func EndOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 23, 59, 59, 999999999, t.Location())
}
