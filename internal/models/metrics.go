package models

import (
	"time"
)

// RoomMetrics tracks activity counters for a single room. It is created when
// the room starts, mutated on every tracked event and folded into aggregate
// counters when the room is destroyed.
type RoomMetrics struct {
	// RoomID is the chat ID the metrics belong to
	RoomID int64

	// PlayerCount is the number of seated players at last update
	PlayerCount int

	// StartedAt is when the room's game began
	StartedAt time.Time

	// TurnCount is the number of turns taken
	TurnCount int

	// WordsAccepted is the number of valid words played
	WordsAccepted int

	// Timeouts is the number of turn timeouts
	Timeouts int

	// Errors is the number of rejected or failed submissions
	Errors int

	// LastActivity is when the room last saw a tracked event
	LastActivity time.Time
}
