package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/KirkDiggler/wordchain/internal/models"
	"github.com/KirkDiggler/wordchain/internal/services/game"
	"github.com/KirkDiggler/wordchain/internal/services/messaging"
)

const helpText = `Word chain! One game per chat.

/game - open a game and wait for players
/join - take a seat while the game is waiting
/forcestart - skip the wait and start now
/stop - stop the game in this chat
/status - show whose turn it is
/help - this message

When it's your turn, just type your word.`

// Per-player submission throttle: a short burst, then one message a second.
const (
	rateLimitPerSecond = 1
	rateLimitBurst     = 3
)

// HandlerConfig holds configuration for the update handler
type HandlerConfig struct {
	Sender   MessageSender
	Game     game.Service
	Messages messaging.Service
	Logger   zerolog.Logger
}

// Handler turns Telegram updates into game service calls
type Handler struct {
	sender   MessageSender
	game     game.Service
	messages messaging.Service
	logger   zerolog.Logger

	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
}

// NewHandler creates a new update handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Sender == nil {
		return nil, errors.New("sender cannot be nil")
	}
	if cfg.Game == nil {
		return nil, errors.New("game service cannot be nil")
	}
	if cfg.Messages == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	return &Handler{
		sender:   cfg.Sender,
		game:     cfg.Game,
		messages: cfg.Messages,
		logger:   cfg.Logger,
		limiters: make(map[int64]*rate.Limiter),
	}, nil
}

// HandleUpdate dispatches one Telegram update
func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}

	switch msg.Command() {
	case "game", "start":
		h.handleCreate(ctx, msg)
	case "join":
		h.handleJoin(ctx, msg)
	case "forcestart":
		h.handleForceStart(ctx, msg)
	case "stop":
		h.handleStop(ctx, msg)
	case "status":
		h.handleStatus(ctx, msg)
	case "help":
		h.reply(msg.Chat.ID, helpText)
	case "":
		h.handleWord(ctx, msg)
	}
}

func (h *Handler) handleCreate(ctx context.Context, msg *tgbotapi.Message) {
	out, err := h.game.CreateRoom(ctx, &game.CreateRoomInput{
		RoomID:  msg.Chat.ID,
		Starter: playerFromUser(msg.From),
	})
	if err != nil {
		h.replyError(msg.Chat.ID, err)
		return
	}
	// The announcer already posted the waiting message; nothing else to say.
	_ = out
}

func (h *Handler) handleJoin(ctx context.Context, msg *tgbotapi.Message) {
	player := playerFromUser(msg.From)

	out, err := h.game.JoinRoom(ctx, &game.JoinRoomInput{
		RoomID: msg.Chat.ID,
		Player: player,
	})
	if err != nil {
		h.replyError(msg.Chat.ID, err)
		return
	}

	h.logger.Debug().
		Int64("chat_id", msg.Chat.ID).
		Str("player", player.Name).
		Int("players", out.PlayerCount).
		Msg("player joined")
}

func (h *Handler) handleForceStart(ctx context.Context, msg *tgbotapi.Message) {
	if _, err := h.game.StartRoom(ctx, &game.StartRoomInput{RoomID: msg.Chat.ID}); err != nil {
		h.replyError(msg.Chat.ID, err)
	}
}

func (h *Handler) handleStop(ctx context.Context, msg *tgbotapi.Message) {
	out, err := h.game.StopRoom(ctx, &game.StopRoomInput{RoomID: msg.Chat.ID})
	if err != nil {
		h.replyError(msg.Chat.ID, err)
		return
	}
	if !out.Stopped {
		h.replyError(msg.Chat.ID, game.ErrRoomNotFound)
	}
}

func (h *Handler) handleStatus(ctx context.Context, msg *tgbotapi.Message) {
	out, err := h.game.RoomStatus(ctx, &game.RoomStatusInput{RoomID: msg.Chat.ID})
	if err != nil {
		h.replyError(msg.Chat.ID, err)
		return
	}

	var b strings.Builder
	switch out.Status {
	case models.RoomStatusWaiting:
		b.WriteString("Waiting for players: ")
		b.WriteString(strings.Join(out.Players, ", "))
		b.WriteString("\nType /join to get in, or /forcestart to begin.")
	case models.RoomStatusActive:
		b.WriteString("It's ")
		b.WriteString(out.CurrentPlayer)
		b.WriteString("'s turn: letter ")
		b.WriteString(out.Letter)
		b.WriteString(", ")
		b.WriteString(out.Remaining.Round(time.Second).String())
		b.WriteString(" left.\nPlayers: ")
		b.WriteString(strings.Join(out.Players, ", "))
	default:
		b.WriteString("This game is over.")
	}
	h.reply(msg.Chat.ID, b.String())
}

func (h *Handler) handleWord(ctx context.Context, msg *tgbotapi.Message) {
	if strings.TrimSpace(msg.Text) == "" {
		return
	}

	if !h.limiterFor(msg.From.ID).Allow() {
		h.logger.Debug().
			Int64("chat_id", msg.Chat.ID).
			Int64("player_id", msg.From.ID).
			Msg("submission dropped by rate limit")
		return
	}

	out, err := h.game.SubmitWord(ctx, &game.SubmitWordInput{
		RoomID:   msg.Chat.ID,
		PlayerID: msg.From.ID,
		Word:     msg.Text,
	})
	if err != nil {
		h.logger.Error().Err(err).Int64("chat_id", msg.Chat.ID).Msg("word submission failed")
		return
	}

	// Acceptance and rejection feedback flows through the announcer; only
	// turn-less chatter falls through silently here.
	_ = out
}

func (h *Handler) limiterFor(playerID int64) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	l, ok := h.limiters[playerID]
	if !ok {
		l = rate.NewLimiter(rate.Limit(rateLimitPerSecond), rateLimitBurst)
		h.limiters[playerID] = l
	}
	return l
}

func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.logger.Error().Err(err).Int64("chat_id", chatID).Msg("telegram send failed")
	}
}

func (h *Handler) replyError(chatID int64, err error) {
	out, msgErr := h.messages.GetErrorMessage(context.Background(), &messaging.GetErrorMessageInput{
		ErrorType: errorType(err),
	})
	if msgErr != nil {
		h.logger.Error().Err(msgErr).Msg("building error message failed")
		return
	}
	h.reply(chatID, out.Message)
}

// errorType maps service errors to messaging error categories
func errorType(err error) string {
	switch {
	case errors.Is(err, game.ErrRoomExists):
		return "room_exists"
	case errors.Is(err, game.ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, game.ErrNotEnoughPlayers):
		return "not_enough_players"
	case errors.Is(err, game.ErrAdmissionDenied):
		return "admission_denied"
	case errors.Is(err, game.ErrAlreadyJoined):
		return "already_joined"
	case errors.Is(err, game.ErrRoomFull):
		return "room_full"
	case errors.Is(err, game.ErrRoomNotWaiting):
		return "room_not_waiting"
	default:
		return "unknown"
	}
}

// playerFromUser builds a seat entry from a Telegram user
func playerFromUser(user *tgbotapi.User) *models.Player {
	name := user.FirstName
	if name == "" {
		name = user.UserName
	}
	return &models.Player{
		ID:     user.ID,
		Name:   name,
		Active: true,
	}
}
