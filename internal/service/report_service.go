package service

import (
	"context"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// ReportService aggregates raw per-day hour records into the rows the
// admin dashboard renders: per-user totals for the day and month views,
// a per-weekday matrix for the week view.
type ReportService interface {
	Aggregate(ctx context.Context, scope domain.Scope) (*domain.Report, error)
}
