package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/wordchain/internal/services/game Service

import "context"

// Service defines the interface for room and game operations
type Service interface {
	// CreateRoom opens a new room in the waiting state
	CreateRoom(ctx context.Context, input *CreateRoomInput) (*CreateRoomOutput, error)

	// JoinRoom seats a player in a waiting room
	JoinRoom(ctx context.Context, input *JoinRoomInput) (*JoinRoomOutput, error)

	// StartRoom promotes a waiting room to an active game
	StartRoom(ctx context.Context, input *StartRoomInput) (*StartRoomOutput, error)

	// StopRoom tears a room down regardless of state
	StopRoom(ctx context.Context, input *StopRoomInput) (*StopRoomOutput, error)

	// SubmitWord processes a word submission for the room's current turn
	SubmitWord(ctx context.Context, input *SubmitWordInput) (*SubmitWordOutput, error)

	// LeaveRoom removes a player from a room
	LeaveRoom(ctx context.Context, input *LeaveRoomInput) (*LeaveRoomOutput, error)

	// SetPlayerActive toggles whether a player takes turns
	SetPlayerActive(ctx context.Context, input *SetPlayerActiveInput) (*SetPlayerActiveOutput, error)

	// RoomStatus reports one room's state
	RoomStatus(ctx context.Context, input *RoomStatusInput) (*RoomStatusOutput, error)

	// SystemStatus reports process-wide load and metrics
	SystemStatus(ctx context.Context) (*SystemStatusOutput, error)

	// Sweep closes idle rooms and reclaims idle locks
	Sweep(ctx context.Context) (*SweepOutput, error)

	// RunSweeper runs Sweep on an interval until ctx is cancelled
	RunSweeper(ctx context.Context)
}
