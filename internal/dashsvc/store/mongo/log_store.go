package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type LogStore struct {
	db *mongo.Database
}

func NewLogStore(db *mongo.Database) *LogStore {
	return &LogStore{db: db}
}

type logDoc struct {
	TwitchID  string    `bson:"twitch_id"`
	Timestamp time.Time `bson:"timestamp"`
	Action    string    `bson:"action"`
	Details   struct {
		Name   string `bson:"name"`
		Rarity string `bson:"rarity"`
	} `bson:"details"`
}

func (s *LogStore) FindByTwitchID(ctx context.Context, twitchID string) ([]models.LogEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cur, err := s.db.Collection("log_history").Find(ctx, bson.M{"twitch_id": twitchID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find logs for %s: %w", twitchID, err)
	}
	defer cur.Close(ctx)

	var entries []models.LogEntry
	for cur.Next(ctx) {
		var d logDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode log entry: %w", err)
		}
		entries = append(entries, models.LogEntry{
			TwitchID:  d.TwitchID,
			Timestamp: d.Timestamp,
			Action:    d.Action,
			Details: models.LogDetails{
				Name:   d.Details.Name,
				Rarity: d.Details.Rarity,
			},
		})
	}
	return entries, cur.Err()
}
