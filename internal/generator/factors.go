package generator

import (
	"fmt"
	"time"
)

// DefaultGrowthRate is the price growth accumulated over the whole range
const DefaultGrowthRate = 0.20

// SeasonalFactor returns the month-of-year multiplier.
// Year-end and New Year sell best, March has the pre-holiday rush and
// July/August are the slow summer months.
func SeasonalFactor(t time.Time) float64 {
	switch t.Month() {
	case time.December, time.January:
		return 1.4
	case time.March:
		return 1.3
	case time.July, time.August:
		return 0.8
	default:
		return 1.0
	}
}

// WeekdayFactor returns the day-of-week multiplier
func WeekdayFactor(t time.Time) float64 {
	switch t.Weekday() {
	case time.Monday:
		return 1.1
	case time.Tuesday, time.Wednesday, time.Thursday:
		return 1.0
	case time.Friday:
		return 1.15
	default:
		return 0.6
	}
}

// DateRange is a closed range of calendar days in UTC
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DefaultRange covers 2022-01-01 through 2025-12-31
func DefaultRange() DateRange {
	return NewDateRange(
		time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
}

// NewDateRange builds a range from the calendar days of start and end
func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: Day(start), End: Day(end)}
}

// Day truncates t to midnight UTC of its calendar day
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Span is the number of whole days between Start and End
func (r DateRange) Span() int {
	return daysBetween(r.Start, r.End)
}

// Len is the number of calendar days in the range, both ends included
func (r DateRange) Len() int {
	if r.End.Before(r.Start) {
		return 0
	}
	return r.Span() + 1
}

// Validate rejects ranges without a positive span, which would make the
// trend factor undefined
func (r DateRange) Validate() error {
	if r.Span() <= 0 {
		return fmt.Errorf("%s..%s: %w", r.Start.Format(time.DateOnly), r.End.Format(time.DateOnly), ErrInvalidRange)
	}
	return nil
}

// Contains reports whether the calendar day of t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// Each calls fn for every day of the range in chronological order
func (r DateRange) Each(fn func(day time.Time)) {
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// TrendFactor ramps linearly from 1.0 at Start to 1.0+growth at End
func (r DateRange) TrendFactor(t time.Time, growth float64) float64 {
	elapsed := daysBetween(r.Start, Day(t))
	return 1.0 + growth*float64(elapsed)/float64(r.Span())
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
