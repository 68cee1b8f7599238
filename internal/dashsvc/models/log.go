package models

import "time"

// LogEntry is an append-only action log row, keyed by the user's
// Twitch id rather than the store id.
type LogEntry struct {
	TwitchID  string     `json:"twitch_id"`
	Timestamp time.Time  `json:"timestamp"`
	Action    string     `json:"action"`
	Details   LogDetails `json:"details"`
}

// LogDetails carries the optional card fields of a log entry. Both
// fields may be empty for actions that do not involve a card.
type LogDetails struct {
	Name   string `json:"name"`
	Rarity string `json:"rarity"`
}
