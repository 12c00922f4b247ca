package messaging

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// service implements the Service interface
type service struct {
	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var seed int64
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// GetWaitingStartedMessage returns the announcement for a freshly opened room
func (s *service) GetWaitingStartedMessage(ctx context.Context, input *GetWaitingStartedMessageInput) (*GetWaitingStartedMessageOutput, error) {
	messages := []string{
		"%s wants to play word chain! Type /join to get in. Starting in %d seconds.",
		"A new word chain game is brewing, courtesy of %s! /join within %d seconds to play.",
		"%s has thrown down the gauntlet! You have %d seconds to /join.",
		"Word nerds assemble! %s started a game. %d seconds until kickoff, /join now.",
	}

	return &GetWaitingStartedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.StarterName, input.GraceSeconds),
	}, nil
}

// GetWaitingTickMessage returns a reminder that the game is about to start
func (s *service) GetWaitingTickMessage(ctx context.Context, input *GetWaitingTickMessageInput) (*GetWaitingTickMessageOutput, error) {
	messages := []string{
		"%d seconds left to /join! %d player(s) in so far.",
		"Tick tock... %d seconds until we start with %d player(s).",
		"Last call! %d seconds on the clock, %d player(s) seated.",
	}

	return &GetWaitingTickMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.SecondsLeft, input.PlayerCount),
	}, nil
}

// GetGameStartMessage returns the game start announcement with turn order
func (s *service) GetGameStartMessage(ctx context.Context, input *GetGameStartMessageInput) (*GetGameStartMessageOutput, error) {
	order := strings.Join(input.Order, " → ")

	messages := []string{
		"Game on! Turn order: %s",
		"Here we go! Playing order: %s",
		"The chain begins! Order of battle: %s",
	}

	return &GetGameStartMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), order),
	}, nil
}

// GetTurnPromptMessage returns the prompt for the current player's turn
func (s *service) GetTurnPromptMessage(ctx context.Context, input *GetTurnPromptMessageInput) (*GetTurnPromptMessageOutput, error) {
	messages := []string{
		"%s, your word! Starts with %s, at least %d letters. %d seconds.",
		"Over to you, %s: something with %s, %d letters or more. Clock's at %d seconds.",
		"%s is up! Letter %s, minimum %d letters, %d seconds on the clock.",
	}

	return &GetTurnPromptMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.Letter, input.MinLength, input.Seconds),
	}, nil
}

// GetTurnWarningMessage returns a running-out-of-time warning
func (s *service) GetTurnWarningMessage(ctx context.Context, input *GetTurnWarningMessageInput) (*GetTurnWarningMessageOutput, error) {
	messages := []string{
		"%s, %d seconds left!",
		"Hurry up %s, only %d seconds to go!",
		"%s... %d seconds. No pressure.",
	}

	return &GetTurnWarningMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.SecondsLeft),
	}, nil
}

// GetWordAcceptedMessage returns praise for a valid word
func (s *service) GetWordAcceptedMessage(ctx context.Context, input *GetWordAcceptedMessageInput) (*GetWordAcceptedMessageOutput, error) {
	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	// Every template takes the player first, then the word.
	var messages []string
	switch tone {
	case ToneSarcastic:
		messages = []string{
			"%s played \"%s\". The dictionary is thrilled, I'm sure.",
			"%s went with \"%s\". Bold choice.",
		}
	case ToneEncouraging:
		messages = []string{
			"Nice one, %s! \"%s\" it is.",
			"Great pick, %s! \"%s\" keeps the chain alive.",
		}
	default:
		messages = []string{
			"%s drops \"%s\" like it's hot!",
			"%s plays \"%s\". The chain continues!",
		}
	}

	return &GetWordAcceptedMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.Word),
		Tone:    tone,
	}, nil
}

// GetEliminationMessage returns the announcement for a timed-out player
func (s *service) GetEliminationMessage(ctx context.Context, input *GetEliminationMessageInput) (*GetEliminationMessageOutput, error) {
	messages := []string{
		"Time's up for %s! %d player(s) remain.",
		"%s froze up and is out! %d still standing.",
		"The clock claims %s. %d player(s) left in the chain.",
	}

	return &GetEliminationMessageOutput{
		Message: fmt.Sprintf(s.pick(messages), input.PlayerName, input.RemainingPlayers),
	}, nil
}

// GetGameEndMessage returns the game over announcement
func (s *service) GetGameEndMessage(ctx context.Context, input *GetGameEndMessageInput) (*GetGameEndMessageOutput, error) {
	if input.Winner != "" {
		messages := []string{
			"🏆 %s wins! Last one standing in the word chain.",
			"Game over! %s outlasted everyone. Take a bow.",
			"And the word chain champion is... %s!",
		}
		return &GetGameEndMessageOutput{
			Message: fmt.Sprintf(s.pick(messages), input.Winner),
		}, nil
	}

	switch input.Reason {
	case "not_enough_players":
		return &GetGameEndMessageOutput{
			Message: "Not enough players joined. The game is off, maybe next time!",
		}, nil
	case "idle":
		return &GetGameEndMessageOutput{
			Message: "This game went quiet for too long, so I've packed it up.",
		}, nil
	case "abandoned":
		return &GetGameEndMessageOutput{
			Message: "Everyone left! Game over.",
		}, nil
	default:
		return &GetGameEndMessageOutput{
			Message: "Game stopped. Thanks for playing!",
		}, nil
	}
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	var message string
	switch input.ErrorType {
	case "room_exists":
		message = "There's already a game in this chat! Type /join to get in on it."
	case "room_not_found":
		message = "No game here yet. Start one with /game!"
	case "not_enough_players":
		message = "Can't start with fewer than 2 players. Rally some friends with /join!"
	case "admission_denied":
		message = "I'm juggling too many games right now. Try again in a few minutes!"
	case "already_joined":
		message = "You're already in! Patience."
	case "room_full":
		message = "This game is packed, no seats left."
	case "room_not_waiting":
		message = "The game has already started, you'll have to catch the next one."
	default:
		message = "Something went sideways. Try that again?"
	}

	return &GetErrorMessageOutput{Message: message}, nil
}

// pick returns a random element of messages
func (s *service) pick(messages []string) string {
	return messages[s.rand.Intn(len(messages))]
}
