package domain

import (
	"fmt"
	"time"
)

// Range preset labels recognized by the dashboard.
const (
	RangeAll    = "all"
	RangeToday  = "today"
	RangeWeek   = "week"
	RangeMonth  = "month"
	RangeCustom = "custom"
)

// DateRange is a day-granular reporting window. Start and End are either both
// nil (all-time) or both set, with Start at 00:00:00.000 and End at
// 23:59:59.999 of their calendar days. Bounds are inclusive on both ends.
type DateRange struct {
	Label string
	Start *time.Time
	End   *time.Time
}

// AllTime is the unbounded range.
func AllTime() DateRange {
	return DateRange{Label: RangeAll}
}

// TodayRange covers the calendar day of now.
func TodayRange(now time.Time) DateRange {
	start := startOfDay(now)
	end := endOfDay(now)
	return DateRange{Label: RangeToday, Start: &start, End: &end}
}

// LastSevenDays covers the seven calendar days before today through end of
// today.
func LastSevenDays(now time.Time) DateRange {
	start := startOfDay(now).AddDate(0, 0, -7)
	end := endOfDay(now)
	return DateRange{Label: RangeWeek, Start: &start, End: &end}
}

// ThisMonth covers the first of the current month through end of today.
func ThisMonth(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := endOfDay(now)
	return DateRange{Label: RangeMonth, Start: &start, End: &end}
}

// CustomRange builds a range from two calendar-day strings, normalized to day
// boundaries. End must not precede start.
func CustomRange(startDate, endDate string) (DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, startDate, time.Local)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	e, err := time.ParseInLocation(DateLayout, endDate, time.Local)
	if err != nil {
		return DateRange{}, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}
	if e.Before(s) {
		return DateRange{}, fmt.Errorf("end date %s precedes start date %s", endDate, startDate)
	}
	start := startOfDay(s)
	end := endOfDay(e)
	return DateRange{Label: RangeCustom, Start: &start, End: &end}, nil
}

// ResolveRange maps a preset label to its window relative to now. The custom
// label requires both start and end dates; unknown labels are rejected.
func ResolveRange(label, startDate, endDate string, now time.Time) (DateRange, error) {
	switch label {
	case RangeAll, "":
		return AllTime(), nil
	case RangeToday:
		return TodayRange(now), nil
	case RangeWeek:
		return LastSevenDays(now), nil
	case RangeMonth:
		return ThisMonth(now), nil
	case RangeCustom:
		if startDate == "" || endDate == "" {
			return DateRange{}, fmt.Errorf("custom range requires start and end dates")
		}
		return CustomRange(startDate, endDate)
	}
	return DateRange{}, fmt.Errorf("unknown range %q", label)
}

// Unbounded reports whether the range places no date restriction.
func (r DateRange) Unbounded() bool {
	return r.Start == nil || r.End == nil
}

// ContainsDay reports whether the calendar day (YYYY-MM-DD) falls within the
// range. Malformed dates are excluded from bounded ranges.
func (r DateRange) ContainsDay(date string) bool {
	if r.Unbounded() {
		return true
	}
	d, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return false
	}
	return !d.Before(*r.Start) && !d.After(*r.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
