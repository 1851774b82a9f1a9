package repository

import (
	"context"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// TimeEntryRepository is the store contract the aggregation and
// approval services depend on. Every mutation is a single atomic
// statement; the (user_id, date) uniqueness constraint lives in the
// schema, not in application code.
type TimeEntryRepository interface {
	// UpsertHours writes one day's hours for one user, inserting a
	// pending entry or overwriting the hours of an existing one. It
	// returns the row's approval status, which the update leaves
	// untouched, so callers can detect writes over approved entries.
	UpsertHours(ctx context.Context, userID int, date time.Time, hours float64) (domain.ApprovalStatus, error)

	GetByUserAndDate(ctx context.Context, userID int, date time.Time) (*domain.TimeEntry, error)

	// ApproveRange flips every pending entry of the user inside the
	// inclusive [start, end] interval to approved and reports how many
	// rows changed. Already approved entries are untouched.
	ApproveRange(ctx context.Context, userID int, start, end time.Time) (int64, error)

	// SumTotalsByUser returns one row per role=user account with the
	// summed hours inside [start, end], zero for users without entries,
	// ordered by name.
	SumTotalsByUser(ctx context.Context, start, end time.Time) ([]*domain.ReportRow, error)

	// SumWeekdaysByUser is the week-view variant: per-weekday columns
	// for Monday..Friday. Weekend hours inside the interval are not
	// counted.
	SumWeekdaysByUser(ctx context.Context, start, end time.Time) ([]*domain.ReportRow, error)
}
