package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/dates"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/logger"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/metrics"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/repository"
)

type hoursService struct {
	entryRepo repository.TimeEntryRepository
	now       func() time.Time
}

func NewHoursService(entryRepo repository.TimeEntryRepository) HoursService {
	return &hoursService{
		entryRepo: entryRepo,
		now:       time.Now,
	}
}

func (s *hoursService) SubmitHours(ctx context.Context, userID int, scope domain.Scope, hours float64, weekdayCode string) error {
	if !domain.ValidHours(hours) {
		return domain.NewInvalidArgumentError(
			fmt.Sprintf("hours %.2f outside [%v, %v]", hours, domain.MinHours, domain.MaxHours))
	}

	date, err := s.targetDate(scope, weekdayCode)
	if err != nil {
		return err
	}

	var status domain.ApprovalStatus
	err = retryIdempotent(ctx, func() error {
		var opErr error
		status, opErr = s.entryRepo.UpsertHours(ctx, userID, date, hours)
		return opErr
	})
	if err != nil {
		return mapStoreError(err)
	}

	if status == domain.StatusApproved {
		// The write went through; an approved entry keeps its status
		// but its hours just changed. Surface it instead of swallowing.
		log := logger.Get()
		log.Warn().
			Int("user_id", userID).
			Str("date", date.Format(time.DateOnly)).
			Float64("hours", hours).
			Msg("hours overwritten on an already approved entry")
		metrics.ApprovedOverwritesTotal.Inc()
	}

	metrics.HoursSubmittedTotal.Inc()

	return nil
}

// targetDate resolves the date a submission lands on: today for the
// day view, a weekday of the requested ISO week for the week view.
// Month is a review scope, not a submit target.
func (s *hoursService) targetDate(scope domain.Scope, weekdayCode string) (time.Time, error) {
	switch scope.Kind {
	case domain.ScopeDay:
		return dates.DateOnly(s.now()), nil
	case domain.ScopeWeek:
		return dates.WeekdayDate(scope.Year, scope.Week, domain.ParseWeekdayCode(weekdayCode))
	default:
		return time.Time{}, domain.ErrInvalidScope
	}
}
