package words

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wordchain/internal/models"
)

// Result represents the outcome of a word submission
type Result string

const (
	// ResultValidWord indicates the word was accepted
	ResultValidWord Result = "valid"

	// ResultInvalidLetter indicates the word does not start with the required letter
	ResultInvalidLetter Result = "invalid_letter"

	// ResultInvalidLength indicates the word is shorter than the required minimum
	ResultInvalidLength Result = "invalid_length"

	// ResultInvalidWord indicates a malformed, repeated or unrecognized word
	ResultInvalidWord Result = "invalid_word"

	// ResultWrongPlayer indicates the submitter is not the current player
	ResultWrongPlayer Result = "wrong_player"

	// ResultNoActiveGame indicates the room has no game accepting words
	ResultNoActiveGame Result = "no_game"

	// ResultValidationError indicates the dictionary capability was unavailable
	ResultValidationError Result = "validation_error"
)

// Config holds configuration for the word processor
type Config struct {
	// Validator is the dictionary capability
	Validator Validator

	// Logger for accepted and failed submissions
	Logger zerolog.Logger
}

// SubmitInput contains parameters for processing a word submission
type SubmitInput struct {
	// State is the room's game state
	State *models.GameState

	// PlayerID is the submitting player
	PlayerID int64

	// Word is the raw submission
	Word string
}

// SubmitOutput contains the result of processing a word submission
type SubmitOutput struct {
	// Result is the validation outcome
	Result Result

	// Message is player-facing feedback; empty when the submission should be
	// answered silently
	Message string

	// Word is the normalized submission
	Word string
}

// AdvanceInput contains parameters for computing the post-acceptance state
type AdvanceInput struct {
	// State is the room's game state
	State *models.GameState

	// Word is the accepted, normalized word
	Word string

	// Now anchors the next turn
	Now time.Time
}
