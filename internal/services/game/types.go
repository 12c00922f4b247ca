package game

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wordchain/internal/admission"
	"github.com/KirkDiggler/wordchain/internal/common/clock"
	"github.com/KirkDiggler/wordchain/internal/isolation"
	"github.com/KirkDiggler/wordchain/internal/letters"
	"github.com/KirkDiggler/wordchain/internal/metrics"
	"github.com/KirkDiggler/wordchain/internal/models"
	"github.com/KirkDiggler/wordchain/internal/timer"
	"github.com/KirkDiggler/wordchain/internal/words"
)

// Config holds configuration for the game service
type Config struct {
	// GameConfig holds the per-room rules. Nil means defaults.
	GameConfig *models.GameConfig

	// MaxRooms is the hard cap on concurrently tracked rooms
	MaxRooms int

	// WaitingGrace is how long a new room gathers players before the game
	// starts or the room is torn down
	WaitingGrace time.Duration

	// WaitingOffsets are remaining-time marks at which the room is reminded
	// the game is about to start
	WaitingOffsets []time.Duration

	// IdleTimeout is how long a room may go without activity before the
	// sweeper closes it
	IdleTimeout time.Duration

	// SweepInterval is how often the background sweeper runs
	SweepInterval time.Duration

	// LockReclaimAge is how long an untouched room lock survives before the
	// sweeper reclaims it
	LockReclaimAge time.Duration

	// Service dependencies
	Words     *words.Processor
	Timers    *timer.Engine
	Admission *admission.Controller
	Metrics   *metrics.Tracker
	Isolation *isolation.Manager
	Letters   *letters.Picker
	Clock     clock.Clock
	Notifier  Notifier

	Logger zerolog.Logger
}

// CreateRoomInput contains parameters for creating a room
type CreateRoomInput struct {
	// RoomID is the chat the room lives in
	RoomID int64

	// Starter is the player who asked for the game
	Starter *models.Player
}

// CreateRoomOutput contains the result of creating a room
type CreateRoomOutput struct {
	// Grace is how long the room will wait for players
	Grace time.Duration
}

// JoinRoomInput contains parameters for joining a room
type JoinRoomInput struct {
	RoomID int64
	Player *models.Player
}

// JoinRoomOutput contains the result of joining a room
type JoinRoomOutput struct {
	// PlayerCount is the number of seated players after the join
	PlayerCount int
}

// StartRoomInput contains parameters for starting a room's game
type StartRoomInput struct {
	RoomID int64
}

// StartRoomOutput contains the result of starting a game
type StartRoomOutput struct {
	// Order lists player names in turn order
	Order []string

	// Letter is the starting letter
	Letter string
}

// StopRoomInput contains parameters for stopping a room
type StopRoomInput struct {
	RoomID int64
}

// StopRoomOutput contains the result of stopping a room
type StopRoomOutput struct {
	// Stopped is false when there was no room to stop
	Stopped bool
}

// SubmitWordInput contains parameters for a word submission
type SubmitWordInput struct {
	RoomID   int64
	PlayerID int64
	Word     string
}

// SubmitWordOutput contains the result of a word submission
type SubmitWordOutput struct {
	// Result is the validation outcome
	Result words.Result

	// Message is player-facing feedback; empty when the submission should
	// be answered silently
	Message string
}

// LeaveRoomInput contains parameters for leaving a room
type LeaveRoomInput struct {
	RoomID   int64
	PlayerID int64
}

// LeaveRoomOutput contains the result of leaving a room
type LeaveRoomOutput struct {
	// Removed is false when the player was not in the room
	Removed bool
}

// SetPlayerActiveInput contains parameters for toggling a player's
// participation
type SetPlayerActiveInput struct {
	RoomID   int64
	PlayerID int64
	Active   bool
}

// SetPlayerActiveOutput contains the result of toggling participation
type SetPlayerActiveOutput struct {
	Changed bool
}

// RoomStatusInput contains parameters for a room status query
type RoomStatusInput struct {
	RoomID int64
}

// RoomStatusOutput is a point-in-time view of one room
type RoomStatusOutput struct {
	Status         models.RoomStatus
	Players        []string
	CurrentPlayer  string
	Letter         string
	RequiredLength int
	Remaining      time.Duration
	WordsPlayed    int
}

// SystemStatusOutput is a point-in-time view of the whole process
type SystemStatusOutput struct {
	Load     admission.Level
	Metrics  metrics.Snapshot
	Uptime   time.Duration
	Warnings []admission.Warning
}

// SweepOutput contains the result of one sweep pass
type SweepOutput struct {
	// RoomsClosed is how many idle rooms were torn down
	RoomsClosed int

	// LocksReclaimed is how many idle room locks were dropped
	LocksReclaimed int
}
