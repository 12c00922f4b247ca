package telegram

import (
	"context"
	"errors"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/wordchain/internal/services/game"
	"github.com/KirkDiggler/wordchain/internal/services/messaging"
)

// AnnouncerConfig holds configuration for the announcer
type AnnouncerConfig struct {
	// Sender delivers messages to Telegram
	Sender MessageSender

	// Messages builds the announcement text
	Messages messaging.Service

	Logger zerolog.Logger
}

// Announcer relays game events to the room's Telegram chat. It implements
// game.Notifier; the chat ID doubles as the room ID.
type Announcer struct {
	sender   MessageSender
	messages messaging.Service
	logger   zerolog.Logger
}

// NewAnnouncer creates a new announcer
func NewAnnouncer(cfg *AnnouncerConfig) (*Announcer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}
	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Announcer{
		sender:   cfg.Sender,
		messages: cfg.Messages,
		logger:   cfg.Logger,
	}, nil
}

// WaitingStarted announces a newly created room gathering players
func (a *Announcer) WaitingStarted(roomID int64, starter string, grace time.Duration) {
	out, err := a.messages.GetWaitingStartedMessage(context.Background(), &messaging.GetWaitingStartedMessageInput{
		StarterName:  starter,
		GraceSeconds: int(grace.Seconds()),
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building waiting message failed")
		return
	}
	a.send(roomID, out.Message)
}

// WaitingTick reminds the room how long until the game starts
func (a *Announcer) WaitingTick(roomID int64, remaining time.Duration, playerCount int) {
	out, err := a.messages.GetWaitingTickMessage(context.Background(), &messaging.GetWaitingTickMessageInput{
		SecondsLeft: int(remaining.Seconds()),
		PlayerCount: playerCount,
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building waiting tick failed")
		return
	}
	a.send(roomID, out.Message)
}

// GameStarted announces the turn order for a game that just began
func (a *Announcer) GameStarted(roomID int64, order []string) {
	out, err := a.messages.GetGameStartMessage(context.Background(), &messaging.GetGameStartMessageInput{
		Order: order,
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building game start message failed")
		return
	}
	a.send(roomID, out.Message)
}

// TurnStarted announces whose turn it is and what the word must look like
func (a *Announcer) TurnStarted(roomID int64, player string, letter string, minLength int, timeout time.Duration) {
	out, err := a.messages.GetTurnPromptMessage(context.Background(), &messaging.GetTurnPromptMessageInput{
		PlayerName: player,
		Letter:     letter,
		MinLength:  minLength,
		Seconds:    int(timeout.Seconds()),
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building turn prompt failed")
		return
	}
	a.send(roomID, out.Message)
}

// TurnWarning warns the current player their time is running out
func (a *Announcer) TurnWarning(roomID int64, player string, remaining time.Duration) {
	out, err := a.messages.GetTurnWarningMessage(context.Background(), &messaging.GetTurnWarningMessageInput{
		PlayerName:  player,
		SecondsLeft: int(remaining.Seconds()),
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building turn warning failed")
		return
	}
	a.send(roomID, out.Message)
}

// WordAccepted announces a valid submission
func (a *Announcer) WordAccepted(roomID int64, player string, word string) {
	out, err := a.messages.GetWordAcceptedMessage(context.Background(), &messaging.GetWordAcceptedMessageInput{
		PlayerName: player,
		Word:       word,
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building acceptance message failed")
		return
	}
	a.send(roomID, out.Message)
}

// WordRejected relays player-facing feedback for a rejected submission
func (a *Announcer) WordRejected(roomID int64, player string, message string) {
	if message == "" {
		return
	}
	a.send(roomID, message)
}

// PlayerEliminated announces a timeout elimination
func (a *Announcer) PlayerEliminated(roomID int64, player string, remaining int) {
	out, err := a.messages.GetEliminationMessage(context.Background(), &messaging.GetEliminationMessageInput{
		PlayerName:       player,
		RemainingPlayers: remaining,
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building elimination message failed")
		return
	}
	a.send(roomID, out.Message)
}

// GameEnded announces the end of a game
func (a *Announcer) GameEnded(roomID int64, winner string, reason game.EndReason) {
	out, err := a.messages.GetGameEndMessage(context.Background(), &messaging.GetGameEndMessageInput{
		Winner: winner,
		Reason: string(reason),
	})
	if err != nil {
		a.logger.Error().Err(err).Int64("room_id", roomID).Msg("building game end message failed")
		return
	}
	a.send(roomID, out.Message)
}

func (a *Announcer) send(chatID int64, text string) {
	if _, err := a.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		a.logger.Error().Err(err).Int64("chat_id", chatID).Msg("telegram send failed")
	}
}
