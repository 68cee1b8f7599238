package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

func TestFormatHistoryShiftsTimestamp(t *testing.T) {
	logs := &fakeLogStore{entries: map[string][]models.LogEntry{
		"tw1": {
			{
				TwitchID:  "tw1",
				Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
				Action:    "pull",
				Details:   models.LogDetails{Name: "Dragon", Rarity: "legendary"},
			},
		},
	}}
	svc := NewHistoryService(logs)

	lines, err := svc.FormatHistory(context.Background(), "tw1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "2024-01-01 07:00:00 - pull - Dragon - legendary", lines[0])
}

func TestFormatHistoryNewestFirst(t *testing.T) {
	logs := &fakeLogStore{entries: map[string][]models.LogEntry{
		"tw1": {
			{TwitchID: "tw1", Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), Action: "first"},
			{TwitchID: "tw1", Timestamp: time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC), Action: "third"},
			{TwitchID: "tw1", Timestamp: time.Date(2024, 3, 2, 12, 0, 0, 0, time.UTC), Action: "second"},
		},
	}}
	svc := NewHistoryService(logs)

	lines, err := svc.FormatHistory(context.Background(), "tw1")
	require.NoError(t, err)
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "third")
	assert.Contains(t, lines[1], "second")
	assert.Contains(t, lines[2], "first")
}

func TestFormatHistoryEmptyDetails(t *testing.T) {
	logs := &fakeLogStore{entries: map[string][]models.LogEntry{
		"tw1": {
			{TwitchID: "tw1", Timestamp: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), Action: "daily_bonus"},
		},
	}}
	svc := NewHistoryService(logs)

	lines, err := svc.FormatHistory(context.Background(), "tw1")
	require.NoError(t, err)
	require.Len(t, lines, 1)
	// empty detail fields stay empty, no placeholder
	assert.Equal(t, "2024-01-01 07:00:00 - daily_bonus -  - ", lines[0])
}

func TestFormatHistoryEmptyTwitchID(t *testing.T) {
	svc := NewHistoryService(&fakeLogStore{})

	lines, err := svc.FormatHistory(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFormatHistoryNoEntries(t *testing.T) {
	svc := NewHistoryService(&fakeLogStore{entries: map[string][]models.LogEntry{}})

	lines, err := svc.FormatHistory(context.Background(), "tw-unknown")
	require.NoError(t, err)
	assert.Empty(t, lines)
}
