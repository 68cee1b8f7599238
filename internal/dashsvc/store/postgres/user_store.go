package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type UserStore struct {
	db *pgxpool.Pool
}

func NewUserStore(db *pgxpool.Pool) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) FindUsers(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, twitch_id, twitch_name, total_unique_cards
		FROM users
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (s *UserStore) FindUser(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, twitch_id, twitch_name, total_unique_cards
		FROM users
		WHERE id = $1
	`, id)

	u := &models.User{}
	err := row.Scan(&u.ID, &u.TwitchID, &u.TwitchName, &u.TotalUniqueCards)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", id, err)
	}

	return u, nil
}

func (s *UserStore) TopUsersByUniqueCount(ctx context.Context, n int) ([]models.User, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, twitch_id, twitch_name, total_unique_cards
		FROM users
		ORDER BY total_unique_cards DESC
		LIMIT $1
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to find top users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func scanUsers(rows pgx.Rows) ([]models.User, error) {
	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.TwitchID, &u.TwitchName, &u.TotalUniqueCards); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
