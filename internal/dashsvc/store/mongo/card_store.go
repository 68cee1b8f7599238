package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type CardStore struct {
	db *mongo.Database
}

func NewCardStore(db *mongo.Database) *CardStore {
	return &CardStore{db: db}
}

type cardDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Number   int                `bson:"card_number"`
	Name     string             `bson:"name"`
	Rarity   string             `bson:"rarity"`
	ImageURL string             `bson:"image_url"`
}

func (d cardDoc) toModel() models.Card {
	return models.Card{
		ID:       d.ID.Hex(),
		Number:   d.Number,
		Name:     d.Name,
		Rarity:   d.Rarity,
		ImageURL: d.ImageURL,
	}
}

func (s *CardStore) FindCard(ctx context.Context, id string) (*models.Card, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var d cardDoc
	err = s.db.Collection("cards").FindOne(ctx, bson.M{"_id": oid}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find card %s: %w", id, err)
	}

	c := d.toModel()
	return &c, nil
}

func (s *CardStore) CountCards(ctx context.Context) (int64, error) {
	count, err := s.db.Collection("cards").CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count cards: %w", err)
	}
	return count, nil
}
