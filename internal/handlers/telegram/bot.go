package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// BotConfig holds configuration for the Telegram bot
type BotConfig struct {
	// Token is the Telegram bot token
	Token string

	// Debug enables tgbotapi request logging
	Debug bool

	Logger zerolog.Logger
}

// Bot wraps the Telegram client and runs the long-polling update loop. The
// client is connected at construction so the announcer can share it before
// the handler exists.
type Bot struct {
	api    *tgbotapi.BotAPI
	logger zerolog.Logger
}

// NewBot connects to Telegram
func NewBot(cfg *BotConfig) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	api.Debug = cfg.Debug

	return &Bot{
		api:    api,
		logger: cfg.Logger,
	}, nil
}

// API exposes the underlying client for the announcer
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// Run polls for updates and feeds them to handler until ctx is cancelled
func (b *Bot) Run(ctx context.Context, handler *Handler) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.logger.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			b.logger.Info().Msg("bot stopped")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			handler.HandleUpdate(ctx, update)
		}
	}
}
