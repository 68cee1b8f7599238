package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type LogStore struct {
	db *pgxpool.Pool
}

func NewLogStore(db *pgxpool.Pool) *LogStore {
	return &LogStore{db: db}
}

func (s *LogStore) FindByTwitchID(ctx context.Context, twitchID string) ([]models.LogEntry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT twitch_id, timestamp, action, COALESCE(card_name, ''), COALESCE(card_rarity, '')
		FROM log_history
		WHERE twitch_id = $1
		ORDER BY timestamp DESC
	`, twitchID)
	if err != nil {
		return nil, fmt.Errorf("failed to find logs for %s: %w", twitchID, err)
	}
	defer rows.Close()

	var entries []models.LogEntry
	for rows.Next() {
		var e models.LogEntry
		if err := rows.Scan(&e.TwitchID, &e.Timestamp, &e.Action, &e.Details.Name, &e.Details.Rarity); err != nil {
			return nil, fmt.Errorf("failed to scan log entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
