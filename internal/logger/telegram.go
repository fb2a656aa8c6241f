package logger

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramClient delivers log lines to a Telegram chat.
type TelegramClient struct {
	api *tgbotapi.BotAPI
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &TelegramClient{api: api}, nil
}

func (c *TelegramClient) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.DisableWebPagePreview = true
	_, err := c.api.Send(msg)
	return err
}
