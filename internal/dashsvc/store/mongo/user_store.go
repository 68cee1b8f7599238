package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type UserStore struct {
	db *mongo.Database
}

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{db: db}
}

type userDoc struct {
	ID               primitive.ObjectID `bson:"_id"`
	TwitchID         string             `bson:"twitch_id"`
	TwitchName       string             `bson:"twitch_name"`
	TotalUniqueCards int                `bson:"total_unique_cards"`
}

func (d userDoc) toModel() models.User {
	return models.User{
		ID:               d.ID.Hex(),
		TwitchID:         d.TwitchID,
		TwitchName:       d.TwitchName,
		TotalUniqueCards: d.TotalUniqueCards,
	}
}

func (s *UserStore) FindUsers(ctx context.Context) ([]models.User, error) {
	cur, err := s.db.Collection("users").Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	for cur.Next(ctx) {
		var d userDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, d.toModel())
	}
	return users, cur.Err()
}

func (s *UserStore) FindUser(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed id degrades to "no user", same as an unknown one
		return nil, nil
	}

	var d userDoc
	err = s.db.Collection("users").FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", id, err)
	}

	u := d.toModel()
	return &u, nil
}

func (s *UserStore) TopUsersByUniqueCount(ctx context.Context, n int) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "total_unique_cards", Value: -1}}).
		SetLimit(int64(n))

	cur, err := s.db.Collection("users").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find top users: %w", err)
	}
	defer cur.Close(ctx)

	var users []models.User
	for cur.Next(ctx) {
		var d userDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, d.toModel())
	}
	return users, cur.Err()
}
