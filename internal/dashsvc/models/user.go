package models

// User represents a collector profile from the users collection.
// TotalUniqueCards is denormalized and maintained by the ingestion
// process that grants cards; this service only reads it.
type User struct {
	ID               string `json:"id"`
	TwitchID         string `json:"twitch_id"`
	TwitchName       string `json:"twitch_name"`
	TotalUniqueCards int    `json:"total_unique_cards"`
}
