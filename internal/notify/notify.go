package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier pushes household updates to a Telegram group chat. A nil or
// disabled Notifier silently drops every message, so callers never need to
// check whether notifications are configured.
type Notifier struct {
	api *tgbotapi.BotAPI
}

// NewNotifier creates a send-only Telegram client. An empty token disables
// notifications.
func NewNotifier(token string) (*Notifier, error) {
	if token == "" {
		log.Println("Telegram token not set, notifications disabled")
		return &Notifier{}, nil
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	log.Printf("Telegram notifications enabled as @%s", api.Self.UserName)
	return &Notifier{api: api}, nil
}

// Enabled reports whether a bot token was configured.
func (n *Notifier) Enabled() bool {
	return n != nil && n.api != nil
}

// Send delivers a plain-text message to the given chat. Disabled notifiers
// and a zero chat ID are no-ops.
func (n *Notifier) Send(chatID int64, text string) error {
	if !n.Enabled() || chatID == 0 {
		return nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}
