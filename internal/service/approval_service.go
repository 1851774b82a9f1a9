package service

import (
	"context"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// ApprovalService bulk-transitions a user's pending entries inside a
// reporting scope to approved. Approval is one-way; there is no path
// back to pending.
type ApprovalService interface {
	Approve(ctx context.Context, userID int, scope domain.Scope) (*domain.ApprovalReceipt, error)
}
