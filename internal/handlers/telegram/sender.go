package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// MessageSender is the slice of the Telegram bot API this package uses.
// Tests substitute their own implementation.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}
