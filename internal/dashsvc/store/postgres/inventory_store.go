package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type InventoryStore struct {
	db *pgxpool.Pool
}

func NewInventoryStore(db *pgxpool.Pool) *InventoryStore {
	return &InventoryStore{db: db}
}

func (s *InventoryStore) FindByUser(ctx context.Context, userID string) ([]models.InventoryRecord, error) {
	rows, err := s.db.Query(ctx, `
		SELECT user_id, card_id, COALESCE(quantity, 0)
		FROM inventory
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory for user %s: %w", userID, err)
	}
	defer rows.Close()

	var records []models.InventoryRecord
	for rows.Next() {
		var r models.InventoryRecord
		if err := rows.Scan(&r.UserID, &r.CardID, &r.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan inventory record: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
