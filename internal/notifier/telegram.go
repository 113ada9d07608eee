package notifier

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

// telegramNotifier sends order summaries to a Telegram chat.
type telegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger zerolog.Logger
}

// NewTelegram creates a Telegram notifier. The timeout bounds every API
// call, including the initial getMe handshake.
func NewTelegram(token string, chatID int64, timeout time.Duration, logger zerolog.Logger) (Notifier, error) {
	logger = logger.With().Str("component", "telegram-notifier").Logger()

	client := &http.Client{Timeout: timeout}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialise telegram bot")
		return nil, fmt.Errorf("failed to initialise telegram bot: %w", err)
	}

	logger.Info().
		Str("bot", bot.Self.UserName).
		Int64("chat_id", chatID).
		Msg("telegram notifier initialised")

	return &telegramNotifier{
		bot:    bot,
		chatID: chatID,
		logger: logger,
	}, nil
}

// Notify sends the text to the configured chat. The bot API client carries
// its own timeout, so ctx is only consulted before sending.
func (n *telegramNotifier) Notify(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Warn().Err(err).Int64("chat_id", n.chatID).Msg("failed to send telegram message")
		return fmt.Errorf("failed to send telegram message: %w", err)
	}

	n.logger.Debug().Int64("chat_id", n.chatID).Msg("order notification delivered")
	return nil
}
