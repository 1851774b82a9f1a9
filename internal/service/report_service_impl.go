package service

import (
	"context"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/dates"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/metrics"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/repository"
)

type reportService struct {
	entryRepo repository.TimeEntryRepository
	now       func() time.Time
}

func NewReportService(entryRepo repository.TimeEntryRepository) ReportService {
	return &reportService{
		entryRepo: entryRepo,
		now:       time.Now,
	}
}

func (s *reportService) Aggregate(ctx context.Context, scope domain.Scope) (*domain.Report, error) {
	start, end, err := dates.Resolve(scope, s.now())
	if err != nil {
		return nil, err
	}

	var rows []*domain.ReportRow
	switch scope.Kind {
	case domain.ScopeWeek:
		rows, err = s.entryRepo.SumWeekdaysByUser(ctx, start, end)
	default:
		rows, err = s.entryRepo.SumTotalsByUser(ctx, start, end)
	}
	if err != nil {
		return nil, mapStoreError(err)
	}

	metrics.ReportsGeneratedTotal.WithLabelValues(string(scope.Kind)).Inc()

	return &domain.Report{Scope: scope, Rows: rows}, nil
}
