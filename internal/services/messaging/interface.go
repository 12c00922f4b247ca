package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetWaitingStartedMessage returns the announcement for a freshly opened room
	GetWaitingStartedMessage(ctx context.Context, input *GetWaitingStartedMessageInput) (*GetWaitingStartedMessageOutput, error)

	// GetWaitingTickMessage returns a reminder that the game is about to start
	GetWaitingTickMessage(ctx context.Context, input *GetWaitingTickMessageInput) (*GetWaitingTickMessageOutput, error)

	// GetGameStartMessage returns the game start announcement with turn order
	GetGameStartMessage(ctx context.Context, input *GetGameStartMessageInput) (*GetGameStartMessageOutput, error)

	// GetTurnPromptMessage returns the prompt for the current player's turn
	GetTurnPromptMessage(ctx context.Context, input *GetTurnPromptMessageInput) (*GetTurnPromptMessageOutput, error)

	// GetTurnWarningMessage returns a running-out-of-time warning
	GetTurnWarningMessage(ctx context.Context, input *GetTurnWarningMessageInput) (*GetTurnWarningMessageOutput, error)

	// GetWordAcceptedMessage returns praise for a valid word
	GetWordAcceptedMessage(ctx context.Context, input *GetWordAcceptedMessageInput) (*GetWordAcceptedMessageOutput, error)

	// GetEliminationMessage returns the announcement for a timed-out player
	GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error)

	// GetGameEndMessage returns the game over announcement
	GetGameEndMessage(ctx context.Context, input *GetGameEndMessageInput) (*GetGameEndMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
