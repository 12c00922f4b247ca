package words

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/wordchain/internal/models"
)

// Processor validates word submissions against a room's state and an injected
// dictionary capability, and computes the state transition for accepted words.
//
// Length policy: the required length is a minimum. Longer words are always
// accepted; only words shorter than the requirement are rejected.
type Processor struct {
	config  *Config
	pattern *regexp.Regexp
}

// NewProcessor creates a word processor
func NewProcessor(cfg *Config) (*Processor, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Validator == nil {
		return nil, ErrNilValidator
	}

	return &Processor{
		config:  cfg,
		pattern: regexp.MustCompile(`^[a-z]+$`),
	}, nil
}

// Submit validates a submission. Failures short-circuit in a fixed order:
// game liveness, turn ownership, format, repetition, starting letter, length,
// dictionary. A dictionary failure yields ResultValidationError and leaves
// the state untouched. On acceptance the normalized word is recorded in the
// room's used-word set.
func (p *Processor) Submit(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	state := input.State
	if state == nil || state.Status != models.RoomStatusActive {
		return &SubmitOutput{
			Result:  ResultNoActiveGame,
			Message: "No active game in this room",
		}, nil
	}

	current := state.CurrentPlayer()
	if current == nil {
		return &SubmitOutput{
			Result:  ResultNoActiveGame,
			Message: "No current player found",
		}, nil
	}

	if current.ID != input.PlayerID {
		out := &SubmitOutput{Result: ResultWrongPlayer}
		// Only room members get told off; strangers are ignored silently.
		if p.isMember(state, input.PlayerID) {
			out.Message = fmt.Sprintf("It's %s's turn, not yours", current.Name)
		}
		return out, nil
	}

	normalized := strings.ToLower(strings.TrimSpace(input.Word))
	if normalized == "" {
		return &SubmitOutput{
			Result:  ResultInvalidWord,
			Message: "Please enter a word",
		}, nil
	}

	if !p.pattern.MatchString(normalized) {
		return &SubmitOutput{
			Result:  ResultInvalidWord,
			Message: "Words can only contain letters (no numbers, spaces, or special characters)",
			Word:    normalized,
		}, nil
	}

	if state.IsUsed(normalized) {
		return &SubmitOutput{
			Result:  ResultInvalidWord,
			Message: fmt.Sprintf("'%s' has already been used", normalized),
			Word:    normalized,
		}, nil
	}

	if !strings.HasPrefix(normalized, strings.ToLower(state.CurrentLetter)) {
		return &SubmitOutput{
			Result:  ResultInvalidLetter,
			Message: fmt.Sprintf("Word must start with '%s'", strings.ToUpper(state.CurrentLetter)),
			Word:    normalized,
		}, nil
	}

	if len(normalized) < state.RequiredLength {
		return &SubmitOutput{
			Result: ResultInvalidLength,
			Message: fmt.Sprintf("Word must be at least %d letters long (yours is %d)",
				state.RequiredLength, len(normalized)),
			Word: normalized,
		}, nil
	}

	valid, err := p.config.Validator.IsValid(ctx, normalized)
	if err != nil {
		p.config.Logger.Error().Err(err).
			Int64("room_id", state.RoomID).
			Str("word", normalized).
			Msg("dictionary capability unavailable")

		return &SubmitOutput{
			Result:  ResultValidationError,
			Message: "Word validation is temporarily unavailable, try again",
			Word:    normalized,
		}, nil
	}

	if !valid {
		return &SubmitOutput{
			Result:  ResultInvalidWord,
			Message: fmt.Sprintf("'%s' is not a word we recognize", normalized),
			Word:    normalized,
		}, nil
	}

	state.MarkUsed(normalized)

	p.config.Logger.Info().
		Int64("room_id", state.RoomID).
		Int64("player_id", input.PlayerID).
		Str("word", normalized).
		Msg("word accepted")

	return &SubmitOutput{
		Result: ResultValidWord,
		Word:   normalized,
	}, nil
}

// Advance computes the next state after an accepted word: the required letter
// becomes the word's last character, the turn pointer moves, and the minimum
// length grows by one after every second completed round.
func (p *Processor) Advance(input *AdvanceInput) error {
	if input == nil {
		return ErrNilInput
	}
	if input.State == nil {
		return ErrNilState
	}
	state := input.State

	if input.Word != "" {
		state.CurrentLetter = strings.ToUpper(input.Word[len(input.Word)-1:])
	}

	state.AdvanceTurn(input.Now)

	state.RoundTurns++
	if state.RoundTurns >= len(state.Players) {
		state.RoundsCompleted++
		state.RoundTurns = 0

		if state.RoundsCompleted >= 2 && state.RoundsCompleted%2 == 0 {
			state.RequiredLength++
			p.config.Logger.Info().
				Int64("room_id", state.RoomID).
				Int("rounds", state.RoundsCompleted).
				Int("required_length", state.RequiredLength).
				Msg("minimum word length increased")
		}
	}

	return nil
}

func (p *Processor) isMember(state *models.GameState, playerID int64) bool {
	for _, player := range state.Players {
		if player.ID == playerID {
			return true
		}
	}
	return false
}
