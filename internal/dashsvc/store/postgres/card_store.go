package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type CardStore struct {
	db *pgxpool.Pool
}

func NewCardStore(db *pgxpool.Pool) *CardStore {
	return &CardStore{db: db}
}

func (s *CardStore) FindCard(ctx context.Context, id string) (*models.Card, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, card_number, name, rarity, image_url
		FROM cards
		WHERE id = $1
	`, id)

	c := &models.Card{}
	err := row.Scan(&c.ID, &c.Number, &c.Name, &c.Rarity, &c.ImageURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card %s: %w", id, err)
	}

	return c, nil
}

func (s *CardStore) CountCards(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM cards`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}
