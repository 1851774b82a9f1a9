package domain

import "time"

// ScopeKind values are the filter tokens used by the web UI.
type ScopeKind string

const (
	ScopeDay   ScopeKind = "vandaag"
	ScopeWeek  ScopeKind = "week"
	ScopeMonth ScopeKind = "maand"
)

// Scope is the reporting window selected by a caller: today, an
// ISO-8601 week, or a calendar month. Year/Week are set for week
// scopes, Year/Month for month scopes.
type Scope struct {
	Kind  ScopeKind
	Year  int
	Week  int
	Month time.Month
}

func DayScope() Scope {
	return Scope{Kind: ScopeDay}
}

func WeekScope(year, week int) Scope {
	return Scope{Kind: ScopeWeek, Year: year, Week: week}
}

func MonthScope(year int, month time.Month) Scope {
	return Scope{Kind: ScopeMonth, Year: year, Month: month}
}

// ParseScope maps a filter token plus its date parameters to a Scope.
// Unrecognized tokens fail with INVALID_SCOPE.
func ParseScope(filter string, year, month, week int) (Scope, error) {
	switch ScopeKind(filter) {
	case ScopeDay:
		return DayScope(), nil
	case ScopeWeek:
		return WeekScope(year, week), nil
	case ScopeMonth:
		return MonthScope(year, time.Month(month)), nil
	default:
		return Scope{}, ErrInvalidScope
	}
}
