package repository

import (
	"context"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
)

// UserRepository is the read-only roster contract. Account creation
// and credentials are handled elsewhere in the application.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error)
}
