package user

import (
	"context"

	domain "careerbot/backend/internal/domain/auth"
)

// Service serves read-only account views.
type Service struct {
	repo domain.UserRepository
}

// NewService constructs a user service around the provided repository.
func NewService(repo domain.UserRepository) *Service {
	return &Service{repo: repo}
}

// Profile returns the public profile of the account with id. A deleted
// account yields ErrUserNotFound.
func (s *Service) Profile(ctx context.Context, id int64) (domain.Profile, error) {
	if id <= 0 {
		return domain.Profile{}, domain.ErrNotAuthenticated
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.ProfileOf(u), nil
}
