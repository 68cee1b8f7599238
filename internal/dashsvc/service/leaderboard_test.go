package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

func TestTopUsersOrderAndLimit(t *testing.T) {
	users := &fakeUserStore{users: []models.User{
		{ID: "u1", TwitchName: "alice", TotalUniqueCards: 4},
		{ID: "u2", TwitchName: "bob", TotalUniqueCards: 9},
		{ID: "u3", TwitchName: "carol", TotalUniqueCards: 1},
		{ID: "u4", TwitchName: "dave", TotalUniqueCards: 6},
	}}
	svc := NewLeaderboardService(users, &fakeCardStore{})

	top, err := svc.TopUsers(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "bob", top[0].TwitchName)
	assert.Equal(t, "dave", top[1].TwitchName)
	assert.Equal(t, "alice", top[2].TwitchName)
}

func TestTopUsersFewerThanLimit(t *testing.T) {
	users := &fakeUserStore{users: []models.User{
		{ID: "u1", TwitchName: "alice", TotalUniqueCards: 4},
		{ID: "u2", TwitchName: "bob", TotalUniqueCards: 9},
	}}
	svc := NewLeaderboardService(users, &fakeCardStore{})

	top, err := svc.TopUsers(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "bob", top[0].TwitchName)
}

func TestTotalCards(t *testing.T) {
	svc := NewLeaderboardService(&fakeUserStore{}, &fakeCardStore{count: 42})

	total, err := svc.TotalCards(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(42), total)
}
