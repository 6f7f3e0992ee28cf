package dateutil

import (
	"fmt"
	"time"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// MinDate returns the earlier of two dates (either one on ties)
func MinDate(a, b time.Time) time.Time {
	if b.Before(a) {
		return b
	}
	return a
}

// MaxDate returns the later of two dates (either one on ties)
func MaxDate(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// NextDay returns the calendar day after the given date.
// Uses AddDate so month and year boundaries are handled by the standard
// library ("one calendar day later", not "24 hours later").
func NextDay(date time.Time) time.Time {
	return date.AddDate(0, 0, 1)
}

// ToDays returns the number of whole days in a duration, rounding down.
// Only meaningful for non-negative durations.
func ToDays(d time.Duration) int {
	return int(d.Hours() / 24)
}

// dateOnly rebuilds the calendar date of t at midnight UTC. Day
// arithmetic must compare both endpoints in one location: subtracting
// midnights from different zones yields a non-whole day count that
// ToDays truncates to the wrong offset.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b,
// ignoring time-of-day and location on both ends.
func DaysBetween(a, b time.Time) int {
	return ToDays(dateOnly(b).Sub(dateOnly(a)))
}

// DateRange returns the inclusive sequence of calendar days from start
// to end, normalized to midnight UTC. Returns an empty slice when
// start is after end; iterating forward from a reversed bound would
// never terminate, so the guard is required, not cosmetic.
func DateRange(start, end time.Time) []time.Time {
	first := dateOnly(start)
	last := dateOnly(end)
	if first.After(last) {
		return nil
	}

	days := make([]time.Time, 0, DaysBetween(first, last)+1)
	for d := first; !d.After(last); d = NextDay(d) {
		days = append(days, d)
	}
	return days
}

// MonthBucket groups the consecutive days of a date range that share a
// calendar month and year.
type MonthBucket struct {
	Year  int
	Month time.Month
	Days  []time.Time
}

// MonthRange groups DateRange(start, end) into month buckets, in the
// order the months are first encountered. The buckets partition the
// range: concatenating their Days reproduces DateRange(start, end).
func MonthRange(start, end time.Time) []MonthBucket {
	var buckets []MonthBucket

	for _, day := range DateRange(start, end) {
		n := len(buckets)
		if n == 0 || buckets[n-1].Year != day.Year() || buckets[n-1].Month != day.Month() {
			buckets = append(buckets, MonthBucket{
				Year:  day.Year(),
				Month: day.Month(),
			})
			n++
		}
		buckets[n-1].Days = append(buckets[n-1].Days, day)
	}

	return buckets
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
