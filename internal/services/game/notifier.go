package game

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/wordchain/internal/services/game Notifier

import "time"

// EndReason explains why a room's game ended
type EndReason string

const (
	// EndReasonWinner indicates a single player outlasted the rest
	EndReasonWinner EndReason = "winner"

	// EndReasonStopped indicates the game was stopped by command
	EndReasonStopped EndReason = "stopped"

	// EndReasonAbandoned indicates every player left the room
	EndReasonAbandoned EndReason = "abandoned"

	// EndReasonIdle indicates the room was swept for inactivity
	EndReasonIdle EndReason = "idle"

	// EndReasonNotEnoughPlayers indicates the waiting period expired short
	EndReasonNotEnoughPlayers EndReason = "not_enough_players"
)

// Notifier receives room events as they happen. Calls are made while the
// room's lock is held, so implementations must not call back into the
// service and should return quickly.
type Notifier interface {
	// WaitingStarted announces a newly created room gathering players
	WaitingStarted(roomID int64, starter string, grace time.Duration)

	// WaitingTick reminds the room how long until the game starts
	WaitingTick(roomID int64, remaining time.Duration, playerCount int)

	// GameStarted announces the turn order for a game that just began
	GameStarted(roomID int64, order []string)

	// TurnStarted announces whose turn it is and what the word must look like
	TurnStarted(roomID int64, player string, letter string, minLength int, timeout time.Duration)

	// TurnWarning warns the current player their time is running out
	TurnWarning(roomID int64, player string, remaining time.Duration)

	// WordAccepted announces a valid submission
	WordAccepted(roomID int64, player string, word string)

	// WordRejected relays player-facing feedback for a rejected submission
	WordRejected(roomID int64, player string, message string)

	// PlayerEliminated announces a timeout elimination
	PlayerEliminated(roomID int64, player string, remaining int)

	// GameEnded announces the end of a game. Winner is empty unless reason
	// is EndReasonWinner.
	GameEnded(roomID int64, winner string, reason EndReason)
}
