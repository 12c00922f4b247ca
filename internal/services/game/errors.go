package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrRoomNotFound     GameError = "room not found"
	ErrRoomExists       GameError = "room already has a game"
	ErrRoomNotWaiting   GameError = "room is not waiting for players"
	ErrRoomNotActive    GameError = "room has no active game"
	ErrNotEnoughPlayers GameError = "not enough players to start"
	ErrRoomFull         GameError = "room is at maximum capacity"
	ErrAlreadyJoined    GameError = "player already joined"
	ErrAdmissionDenied  GameError = "room creation denied by admission control"
	ErrPlayerNotInRoom  GameError = "player is not in the room"
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNilWordProcessor GameError = "word processor cannot be nil"
	ErrNilTimerEngine   GameError = "timer engine cannot be nil"
	ErrNilAdmission     GameError = "admission controller cannot be nil"
	ErrNilMetrics       GameError = "metrics tracker cannot be nil"
	ErrNilIsolation     GameError = "isolation manager cannot be nil"
	ErrNilLetterPicker  GameError = "letter picker cannot be nil"
	ErrNilNotifier      GameError = "notifier cannot be nil"
	ErrNilInput         GameError = "input cannot be nil"
	ErrNilPlayer        GameError = "player cannot be nil"
)
