package service

import (
	"context"
	"fmt"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
	"github.com/mgacha/dashboard-services/internal/dashsvc/store"
)

// LeaderboardService ranks users by their distinct-card count and
// supplies the catalog size used as the x/y display denominator.
type LeaderboardService struct {
	users store.UserStore
	cards store.CardStore
}

func NewLeaderboardService(users store.UserStore, cards store.CardStore) *LeaderboardService {
	return &LeaderboardService{
		users: users,
		cards: cards,
	}
}

// TopUsers returns at most n users, highest distinct-card count first.
func (s *LeaderboardService) TopUsers(ctx context.Context, n int) ([]models.User, error) {
	users, err := s.users.TopUsersByUniqueCount(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("failed to load top users: %w", err)
	}
	return users, nil
}

// TotalCards returns the number of cards in the catalog.
func (s *LeaderboardService) TotalCards(ctx context.Context) (int64, error) {
	count, err := s.cards.CountCards(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count catalog: %w", err)
	}
	return count, nil
}
