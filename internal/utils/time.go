package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/score100/internal/constants"
)

// MinutesPerDay is one past the last valid minute-of-day.
const MinutesPerDay = 24 * 60

// DateKey formats t as the calendar-day key (YYYY-MM-DD) in t's own location.
func DateKey(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// YesterdayKey returns the calendar-day key for the day before t.
func YesterdayKey(t time.Time) string {
	return t.AddDate(0, 0, -1).Format(constants.DateFormat)
}

// ParseDate parses a YYYY-MM-DD key at midnight in loc.
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// MinuteOfDay returns the minutes elapsed since local midnight for t.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ParseClockToMinutes converts a wall-clock string into minutes since midnight.
//
// The 12-hour form "HH:MM AM" / "HH:MM PM" is the canonical input: hours are taken
// modulo 12 and 12 is added for PM, so 12:00 AM is 0 and 12:00 PM is 720. The suffix
// is case-insensitive and the space before it is optional. Without a suffix the hour
// is read as a 24-hour value.
func ParseClockToMinutes(clock string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(clock))
	if s == "" {
		return 0, fmt.Errorf("empty time")
	}

	period := ""
	if strings.HasSuffix(s, "AM") || strings.HasSuffix(s, "PM") {
		period = s[len(s)-2:]
		s = strings.TrimSpace(s[:len(s)-2])
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %q", clock)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range in %q", clock)
	}

	switch period {
	case "":
		if hour < 0 || hour > 23 {
			return 0, fmt.Errorf("hour out of range in %q", clock)
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, fmt.Errorf("hour out of range in %q", clock)
		}
		hour %= 12
		if period == "PM" {
			hour += 12
		}
	}

	return hour*60 + minute, nil
}

// FormatClock renders minutes since midnight in the 12-hour clock format.
func FormatClock(minutes int) string {
	t := time.Date(0, 1, 1, minutes/60, minutes%60, 0, 0, time.UTC)
	return t.Format(constants.ClockFormat)
}

// ValidateClock reports whether clock parses as a wall-clock time.
func ValidateClock(clock string) bool {
	_, err := ParseClockToMinutes(clock)
	return err == nil
}

// NormalizeClock rewrites clock in the canonical "HH:MM AM" form.
func NormalizeClock(clock string) (string, error) {
	minutes, err := ParseClockToMinutes(clock)
	if err != nil {
		return "", err
	}
	return FormatClock(minutes), nil
}
