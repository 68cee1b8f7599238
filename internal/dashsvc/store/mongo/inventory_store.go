package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mgacha/dashboard-services/internal/dashsvc/models"
)

type InventoryStore struct {
	db *mongo.Database
}

func NewInventoryStore(db *mongo.Database) *InventoryStore {
	return &InventoryStore{db: db}
}

type inventoryDoc struct {
	UserID   primitive.ObjectID `bson:"user_id"`
	CardID   primitive.ObjectID `bson:"card_id"`
	Quantity int                `bson:"quantity"` // zero when the field is absent
}

func (s *InventoryStore) FindByUser(ctx context.Context, userID string) ([]models.InventoryRecord, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, nil
	}

	cur, err := s.db.Collection("inventory").Find(ctx, bson.M{"user_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to find inventory for user %s: %w", userID, err)
	}
	defer cur.Close(ctx)

	var records []models.InventoryRecord
	for cur.Next(ctx) {
		var d inventoryDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode inventory record: %w", err)
		}
		records = append(records, models.InventoryRecord{
			UserID:   d.UserID.Hex(),
			CardID:   d.CardID.Hex(),
			Quantity: d.Quantity,
		})
	}
	return records, cur.Err()
}
