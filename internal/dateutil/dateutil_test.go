package dateutil

import (
	"testing"
	"time"
)

func TestWeekStartForMonday(t *testing.T) {
	// 2025-06-02 is a Monday
	d := time.Date(2025, 6, 2, 12, 0, 0, 0, time.Local)
	if got := WeekStartFor(d); got != "2025-06-02" {
		t.Fatalf("monday maps to itself, got %s", got)
	}
}

func TestWeekStartForSunday(t *testing.T) {
	// 2025-06-08 is a Sunday and belongs to the week starting 2025-06-02
	d := time.Date(2025, 6, 8, 23, 30, 0, 0, time.Local)
	if got := WeekStartFor(d); got != "2025-06-02" {
		t.Fatalf("sunday maps to preceding monday, got %s", got)
	}
}

func TestWeekRangeFromStart(t *testing.T) {
	start, end, err := WeekRangeFromStart("2025-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start != "2025-06-02" || end != "2025-06-08" {
		t.Fatalf("got range %s..%s", start, end)
	}
}

func TestWeekRangeCrossesMonthBoundary(t *testing.T) {
	_, end, err := WeekRangeFromStart("2025-06-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if end != "2025-07-06" {
		t.Fatalf("expected 2025-07-06, got %s", end)
	}
}

func TestAddDaysNegative(t *testing.T) {
	got, err := AddDays("2025-01-01", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2024-12-31" {
		t.Fatalf("expected 2024-12-31, got %s", got)
	}
}

func TestPreviousWeekStart(t *testing.T) {
	got, err := PreviousWeekStart("2025-06-09")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "2025-06-02" {
		t.Fatalf("expected 2025-06-02, got %s", got)
	}
}

func TestWeekDays(t *testing.T) {
	days, err := WeekDays("2025-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0] != "2025-06-02" || days[6] != "2025-06-08" {
		t.Fatalf("got %v", days)
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	if _, err := ParseDate("06/02/2025"); err == nil {
		t.Fatalf("expected error for non ISO date")
	}
}
