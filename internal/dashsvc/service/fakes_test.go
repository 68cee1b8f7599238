package service

import (
	"context"
	"sort"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

// in-memory store fakes shared by the service tests

type fakeUserStore struct {
	users []models.User
	err   error
}

func (f *fakeUserStore) FindUsers(ctx context.Context) ([]models.User, error) {
	return f.users, f.err
}

func (f *fakeUserStore) FindUser(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) TopUsersByUniqueCount(ctx context.Context, n int) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	top := make([]models.User, len(f.users))
	copy(top, f.users)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].TotalUniqueCards > top[j].TotalUniqueCards
	})
	if len(top) > n {
		top = top[:n]
	}
	return top, nil
}

type fakeCardStore struct {
	cards map[string]models.Card
	count int64
	err   error
}

func (f *fakeCardStore) FindCard(ctx context.Context, id string) (*models.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.cards[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCardStore) CountCards(ctx context.Context) (int64, error) {
	return f.count, f.err
}

type fakeInventoryStore struct {
	records map[string][]models.InventoryRecord
	err     error
}

func (f *fakeInventoryStore) FindByUser(ctx context.Context, userID string) ([]models.InventoryRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.records[userID], nil
}

type fakeLogStore struct {
	entries map[string][]models.LogEntry
	err     error
}

func (f *fakeLogStore) FindByTwitchID(ctx context.Context, twitchID string) ([]models.LogEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	entries := make([]models.LogEntry, len(f.entries[twitchID]))
	copy(entries, f.entries[twitchID])
	// the store contract is newest first
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
