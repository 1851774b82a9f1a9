package service

import (
	"context"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// UserService exposes the read-only roster.
type UserService interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
