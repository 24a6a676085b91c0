package dateutil

import (
	"fmt"
	"time"
)

// Dates are exchanged as YYYY-MM-DD strings in server-local time.
const Layout = "2006-01-02"

func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func TodayLocal() string {
	return FormatDate(time.Now())
}

func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// WeekStartFor returns the Monday of the week containing t.
func WeekStartFor(t time.Time) string {
	offset := (int(t.Weekday()) + 6) % 7
	return FormatDate(t.AddDate(0, 0, -offset))
}

// CurrentWeekRange returns the Monday..Sunday range containing today.
func CurrentWeekRange() (string, string) {
	start := WeekStartFor(time.Now())
	end, _ := AddDays(start, 6)
	return start, end
}

// WeekRangeFromStart returns weekStart and the date six days later.
func WeekRangeFromStart(weekStart string) (string, string, error) {
	t, err := ParseDate(weekStart)
	if err != nil {
		return "", "", err
	}
	start := FormatDate(t)
	end := FormatDate(t.AddDate(0, 0, 6))
	return start, end, nil
}

func PreviousWeekStart(weekStart string) (string, error) {
	return AddDays(weekStart, -7)
}

// WeekDays lists the seven dates starting at weekStart.
func WeekDays(weekStart string) ([]string, error) {
	t, err := ParseDate(weekStart)
	if err != nil {
		return nil, err
	}
	days := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		days = append(days, FormatDate(t.AddDate(0, 0, i)))
	}
	return days, nil
}
