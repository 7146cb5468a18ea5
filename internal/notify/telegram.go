package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

// TelegramNotifier отправляет дайджесты в телеграм-чат школы
type TelegramNotifier struct {
	bot    *bot.Bot
	chatID string
	logger *zap.Logger
}

func NewTelegramNotifier(token, chatID string, logger *zap.Logger) (*TelegramNotifier, error) {
	if token == "" || chatID == "" {
		return nil, fmt.Errorf("telegram token and chat id are required")
	}

	b, err := bot.New(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:    b,
		chatID: chatID,
		logger: logger,
	}, nil
}

// Send отправляет сообщение в настроенный чат
func (n *TelegramNotifier) Send(ctx context.Context, text string) error {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   text,
	})
	if err != nil {
		n.logger.Error("Failed to send telegram message",
			zap.String("chat_id", n.chatID),
			zap.Error(err))
		return fmt.Errorf("send telegram message: %w", err)
	}

	return nil
}
