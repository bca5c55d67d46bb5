package models

import (
	"encoding/json"
	"time"
)

/*
 * 'Achievement' is a read-only display entity. Criteria is the serialized
 * predicate descriptor evaluated by the server; the gateway passes it through.
 */
type Achievement struct {
	ID          string          `json:"id"`
	GameID      string          `json:"gameId,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Criteria    json.RawMessage `json:"criteria,omitempty"`
	Unlocked    bool            `json:"unlocked"`
	UnlockedAt  *time.Time      `json:"unlockedAt,omitempty"`
}
