// Package dates implements the ISO-8601 week arithmetic behind the
// day/week/month reporting windows. All dates are midnight UTC; the
// application runs on a single operational date convention.
package dates

import (
	"fmt"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// DateOnly truncates a timestamp to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// weekStart returns the Monday of the given ISO week. January 4th is
// always inside ISO week 1, which anchors the calculation.
func weekStart(year, week int) time.Time {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	return monday.AddDate(0, 0, (week-1)*7)
}

// WeekBounds returns the Monday and Sunday of the given ISO week/year
// pair. The week must be within [1, WeeksInYear(year)].
func WeekBounds(year, week int) (time.Time, time.Time, error) {
	if week < 1 || week > WeeksInYear(year) {
		return time.Time{}, time.Time{}, domain.NewInvalidArgumentError(
			fmt.Sprintf("week %d out of range for year %d", week, year))
	}
	start := weekStart(year, week)
	return start, start.AddDate(0, 0, 6), nil
}

// WeekdayDate returns the date of ISO weekday 1..7 (Monday..Sunday)
// within the given ISO week.
func WeekdayDate(year, week, weekday int) (time.Time, error) {
	if weekday < 1 || weekday > 7 {
		return time.Time{}, domain.NewInvalidArgumentError(
			fmt.Sprintf("weekday %d out of range", weekday))
	}
	start, _, err := WeekBounds(year, week)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, weekday-1), nil
}

// MonthBounds returns the first and last day of the given month.
func MonthBounds(year int, month time.Month) (time.Time, time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, domain.NewInvalidArgumentError(
			fmt.Sprintf("month %d out of range", month))
	}
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1), nil
}

// MonthName maps 1..12 to the English month name.
func MonthName(month int) (string, error) {
	if month < 1 || month > 12 {
		return "", domain.NewInvalidArgumentError(
			fmt.Sprintf("month %d out of range", month))
	}
	return time.Month(month).String(), nil
}

// WeeksInYear returns the number of ISO weeks in a year: 53 when the
// year starts on a Thursday, or is a leap year starting on a Wednesday,
// otherwise 52.
func WeeksInYear(year int) int {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	switch jan1.Weekday() {
	case time.Thursday:
		return 53
	case time.Wednesday:
		if isLeap(year) {
			return 53
		}
	}
	return 52
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// PreviousWeek steps one week back, rolling into the last ISO week of
// the previous year at the boundary. Some years have 53 ISO weeks.
func PreviousWeek(year, week int) (int, int) {
	if week <= 1 {
		return year - 1, WeeksInYear(year - 1)
	}
	return year, week - 1
}

// NextWeek steps one week forward, rolling into week 1 of the next
// year at the boundary.
func NextWeek(year, week int) (int, int) {
	if week >= WeeksInYear(year) {
		return year + 1, 1
	}
	return year, week + 1
}

// Resolve maps a reporting scope to its inclusive [start, end] date
// interval. The day scope resolves to the supplied reference date.
// This is the single place scope kinds are matched against boundaries.
func Resolve(scope domain.Scope, today time.Time) (time.Time, time.Time, error) {
	switch scope.Kind {
	case domain.ScopeDay:
		d := DateOnly(today)
		return d, d, nil
	case domain.ScopeWeek:
		return WeekBounds(scope.Year, scope.Week)
	case domain.ScopeMonth:
		return MonthBounds(scope.Year, scope.Month)
	default:
		return time.Time{}, time.Time{}, domain.ErrInvalidScope
	}
}
