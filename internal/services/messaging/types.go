package messaging

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Seed overrides the random seed when non-zero, for deterministic tests
	Seed int64
}

// GetWaitingStartedMessageInput contains parameters for the room-opened message
type GetWaitingStartedMessageInput struct {
	// StarterName is the player who opened the room
	StarterName string

	// GraceSeconds is how long the room waits for players
	GraceSeconds int
}

// GetWaitingStartedMessageOutput contains the generated message
type GetWaitingStartedMessageOutput struct {
	Message string
}

// GetWaitingTickMessageInput contains parameters for a waiting reminder
type GetWaitingTickMessageInput struct {
	SecondsLeft int
	PlayerCount int
}

// GetWaitingTickMessageOutput contains the generated message
type GetWaitingTickMessageOutput struct {
	Message string
}

// GetGameStartMessageInput contains parameters for the game start announcement
type GetGameStartMessageInput struct {
	// Order lists player names in turn order
	Order []string
}

// GetGameStartMessageOutput contains the generated message
type GetGameStartMessageOutput struct {
	Message string
}

// GetTurnPromptMessageInput contains parameters for a turn prompt
type GetTurnPromptMessageInput struct {
	PlayerName string
	Letter     string
	MinLength  int
	Seconds    int
}

// GetTurnPromptMessageOutput contains the generated message
type GetTurnPromptMessageOutput struct {
	Message string
}

// GetTurnWarningMessageInput contains parameters for a time warning
type GetTurnWarningMessageInput struct {
	PlayerName  string
	SecondsLeft int
}

// GetTurnWarningMessageOutput contains the generated message
type GetTurnWarningMessageOutput struct {
	Message string
}

// GetWordAcceptedMessageInput contains parameters for an accepted word
type GetWordAcceptedMessageInput struct {
	PlayerName string
	Word       string

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetWordAcceptedMessageOutput contains the generated message
type GetWordAcceptedMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetEliminationMessageInput contains parameters for a timeout elimination
type GetEliminationMessageInput struct {
	PlayerName string

	// RemainingPlayers is how many players are still in
	RemainingPlayers int
}

// GetEliminationMessageOutput contains the generated message
type GetEliminationMessageOutput struct {
	Message string
}

// GetGameEndMessageInput contains parameters for the game over announcement
type GetGameEndMessageInput struct {
	// Winner is empty when the game ended without one
	Winner string

	// Reason is why the game ended
	Reason string
}

// GetGameEndMessageOutput contains the generated message
type GetGameEndMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for a user-facing error message
type GetErrorMessageInput struct {
	ErrorType string
}

// GetErrorMessageOutput contains the generated message
type GetErrorMessageOutput struct {
	Message string
}
