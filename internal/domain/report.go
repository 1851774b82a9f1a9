package domain

// WeekdayHours holds the Monday..Friday columns of the week view.
// Saturday and Sunday are not part of the week report; weekend hours
// are excluded from the columns and from the total.
type WeekdayHours struct {
	Ma float64
	Di float64
	Wo float64
	Do float64
	Vr float64
}

func (w WeekdayHours) Total() float64 {
	return w.Ma + w.Di + w.Wo + w.Do + w.Vr
}

// ReportRow is one user's line in a report. Days is nil for day and
// month scopes. Every active user of role "user" gets a row, with a
// zero total when no hours were logged in the window.
type ReportRow struct {
	UserID int
	Name   string
	Days   *WeekdayHours
	Total  float64
}

// Report is the aggregation result for one scope. Computed on read,
// never persisted.
type Report struct {
	Scope Scope
	Rows  []*ReportRow
}
