package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonalFactor(t *testing.T) {
	want := map[time.Month]float64{
		time.January:   1.4,
		time.February:  1.0,
		time.March:     1.3,
		time.April:     1.0,
		time.May:       1.0,
		time.June:      1.0,
		time.July:      0.8,
		time.August:    0.8,
		time.September: 1.0,
		time.October:   1.0,
		time.November:  1.0,
		time.December:  1.4,
	}
	for m, f := range want {
		assert.Equal(t, f, SeasonalFactor(date(2023, m, 15)), m.String())
	}
}

func TestWeekdayFactor(t *testing.T) {
	// 2024-01-01 is a Monday
	want := []float64{1.1, 1.0, 1.0, 1.0, 1.15, 0.6, 0.6}
	for i, f := range want {
		d := date(2024, time.January, 1+i)
		assert.Equal(t, f, WeekdayFactor(d), d.Weekday().String())
	}
}

func TestFactorsOverDefaultRange(t *testing.T) {
	seasonal := map[float64]bool{1.4: true, 1.3: true, 0.8: true, 1.0: true}
	weekday := map[float64]bool{1.1: true, 1.0: true, 1.15: true, 0.6: true}

	r := DefaultRange()
	prev := 0.0
	r.Each(func(d time.Time) {
		assert.True(t, seasonal[SeasonalFactor(d)])
		assert.True(t, weekday[WeekdayFactor(d)])

		trend := r.TrendFactor(d, DefaultGrowthRate)
		assert.GreaterOrEqual(t, trend, prev, "trend must not decrease at %s", d)
		prev = trend
	})
}

func TestTrendFactorEndpoints(t *testing.T) {
	r := DefaultRange()
	assert.Equal(t, 1.0, r.TrendFactor(r.Start, DefaultGrowthRate))
	assert.InDelta(t, 1.2, r.TrendFactor(r.End, DefaultGrowthRate), 1e-12)

	mid := r.Start.AddDate(0, 0, r.Span()/2)
	assert.InDelta(t, 1.1, r.TrendFactor(mid, DefaultGrowthRate), 1e-3)
}

func TestTrendFactorIgnoresTimeOfDay(t *testing.T) {
	r := DefaultRange()
	noon := r.End.Add(12 * time.Hour)
	assert.Equal(t, r.TrendFactor(r.End, DefaultGrowthRate), r.TrendFactor(noon, DefaultGrowthRate))
}

func TestDateRange(t *testing.T) {
	r := DefaultRange()
	assert.Equal(t, 1460, r.Span())
	assert.Equal(t, 1461, r.Len())
	require.NoError(t, r.Validate())

	assert.True(t, r.Contains(date(2022, time.January, 1)))
	assert.True(t, r.Contains(date(2025, time.December, 31).Add(23*time.Hour)))
	assert.False(t, r.Contains(date(2021, time.December, 31)))
	assert.False(t, r.Contains(date(2026, time.January, 1)))

	var days []time.Time
	NewDateRange(date(2024, time.February, 27), date(2024, time.March, 1)).Each(func(d time.Time) {
		days = append(days, d)
	})
	require.Len(t, days, 4)
	assert.Equal(t, date(2024, time.February, 29), days[2])
}

func TestDateRangeValidate(t *testing.T) {
	same := NewDateRange(date(2024, time.May, 1), date(2024, time.May, 1))
	assert.ErrorIs(t, same.Validate(), ErrInvalidRange)

	reversed := NewDateRange(date(2024, time.May, 2), date(2024, time.May, 1))
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidRange)
	assert.Equal(t, 0, reversed.Len())
}

func TestNewDateRangeNormalizesToUTCDays(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	r := NewDateRange(
		time.Date(2024, time.April, 1, 8, 30, 0, 0, tokyo),
		time.Date(2024, time.April, 3, 23, 0, 0, 0, tokyo),
	)
	assert.Equal(t, date(2024, time.April, 1), r.Start)
	assert.Equal(t, date(2024, time.April, 3), r.End)
	assert.Equal(t, 2, r.Span())
}
