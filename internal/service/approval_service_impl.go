package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/dates"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/metrics"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/repository"
)

type approvalService struct {
	entryRepo repository.TimeEntryRepository
	userRepo  repository.UserRepository
	now       func() time.Time
}

func NewApprovalService(entryRepo repository.TimeEntryRepository, userRepo repository.UserRepository) ApprovalService {
	return &approvalService{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

func (s *approvalService) Approve(ctx context.Context, userID int, scope domain.Scope) (*domain.ApprovalReceipt, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, mapStoreError(err)
	}

	start, end, err := dates.Resolve(scope, s.now())
	if err != nil {
		return nil, err
	}

	var approved int64
	err = retryIdempotent(ctx, func() error {
		var opErr error
		approved, opErr = s.entryRepo.ApproveRange(ctx, userID, start, end)
		return opErr
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	metrics.EntriesApprovedTotal.Add(float64(approved))

	return &domain.ApprovalReceipt{
		Approved: approved,
		Message:  confirmationMessage(scope),
	}, nil
}

// confirmationMessage is the Dutch banner text shown after approval.
// The wording is a UI concern; callers are free to ignore it.
func confirmationMessage(scope domain.Scope) string {
	switch scope.Kind {
	case domain.ScopeWeek:
		return fmt.Sprintf("Uren van deze week (week %d) zijn geapproved", scope.Week)
	case domain.ScopeMonth:
		name, _ := dates.MonthName(int(scope.Month))
		return fmt.Sprintf("Uren van deze maand (%s) zijn geapproved", name)
	default:
		return "Uren van vandaag zijn geapproved"
	}
}
