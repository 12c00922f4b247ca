package models

// Player represents a participant in a word game
type Player struct {
	// ID is the Telegram user ID of the player
	ID int64

	// Name is the display name of the player
	Name string

	// Active indicates whether the player is currently taking turns.
	// An inactive player keeps their seat but is skipped until they return.
	Active bool
}
