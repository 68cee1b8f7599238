package service

import (
	"context"
	"fmt"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
	"github.com/mgacha/dashboard-services/internal/dashsvc/store"
)

// UserService struct represents the user service layer
type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.FindUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// GetUser resolves an id to a user. An empty or unknown id returns
// (nil, nil) so the page degrades to its empty state.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, nil
	}
	return s.users.FindUser(ctx, id)
}
