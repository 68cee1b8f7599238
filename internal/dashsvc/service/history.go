package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mgacha/dashboard-services/internal/dashsvc/store"
)

// Stored timestamps are UTC; the dashboard shows them shifted to the
// streamer's local time. A constant offset is intentional, there is no
// DST handling.
const historyUTCOffset = -3 * time.Hour

const historyTimeLayout = "2006-01-02 15:04:05"

// HistoryService renders a user's action log into display lines.
type HistoryService struct {
	logs store.LogStore
}

func NewHistoryService(logs store.LogStore) *HistoryService {
	return &HistoryService{logs: logs}
}

// FormatHistory returns one line per log entry, newest first. An empty
// twitchID yields an empty list. Missing card details render as empty
// strings, never as a placeholder.
func (s *HistoryService) FormatHistory(ctx context.Context, twitchID string) ([]string, error) {
	lines := []string{}
	if twitchID == "" {
		return lines, nil
	}

	entries, err := s.logs.FindByTwitchID(ctx, twitchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	for _, e := range entries {
		local := e.Timestamp.UTC().Add(historyUTCOffset)
		lines = append(lines, fmt.Sprintf("%s - %s - %s - %s",
			local.Format(historyTimeLayout), e.Action, e.Details.Name, e.Details.Rarity))
	}
	return lines, nil
}
