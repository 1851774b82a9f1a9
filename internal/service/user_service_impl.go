package service

import (
	"context"

	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/domain"
	"github.com/ChristianDeWinter/verbeterdeportofolio/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetByID(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return user, nil
}

func (s *userService) ListByRole(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	users, err := s.userRepo.ListByRole(ctx, role)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return users, nil
}
