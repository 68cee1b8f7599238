package models

// InventoryRecord is one ownership row: a user owns Quantity copies of
// a card. Unique per (user, card) pair.
type InventoryRecord struct {
	UserID   string `json:"user_id"`
	CardID   string `json:"card_id"`
	Quantity int    `json:"quantity"`
}
