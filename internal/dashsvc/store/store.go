package store

import (
	"context"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

// UserStore defines user data access methods.
type UserStore interface {
	FindUsers(ctx context.Context) ([]models.User, error)
	// FindUser returns (nil, nil) when no user matches id.
	FindUser(ctx context.Context, id string) (*models.User, error)
	// TopUsersByUniqueCount returns at most n users ordered by
	// total_unique_cards descending. Tie order is the store default.
	TopUsersByUniqueCount(ctx context.Context, n int) ([]models.User, error)
}

// CardStore defines catalog data access methods.
type CardStore interface {
	// FindCard returns (nil, nil) when no card matches id.
	FindCard(ctx context.Context, id string) (*models.Card, error)
	CountCards(ctx context.Context) (int64, error)
}

// InventoryStore defines ownership data access methods.
type InventoryStore interface {
	FindByUser(ctx context.Context, userID string) ([]models.InventoryRecord, error)
}

// LogStore defines action log access methods.
type LogStore interface {
	// FindByTwitchID returns entries newest first.
	FindByTwitchID(ctx context.Context, twitchID string) ([]models.LogEntry, error)
}
