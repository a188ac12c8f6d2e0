// Package notify posts short audit lines about fleet changes to an admin
// Telegram chat.
package notify

import (
	"fmt"

	tele "gopkg.in/telebot.v3"

	"taxipark/config"
	"taxipark/pkg/logger"
)

type INotifier interface {
	Notify(event string, subject fmt.Stringer)
}

type sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

type telegramNotifier struct {
	bot  sender
	chat *tele.Chat
	log  logger.ILogger
}

// New returns a Telegram notifier, or a no-op one when no token or chat is
// configured.
func New(cfg *config.Config, log logger.ILogger) (INotifier, error) {
	if cfg.TelegramBotToken == "" || cfg.TelegramAdminChatID == 0 {
		log.Info("telegram notifications disabled")
		return Nop{}, nil
	}

	b, err := tele.NewBot(tele.Settings{
		Token:   cfg.TelegramBotToken,
		Offline: true,
	})
	if err != nil {
		log.Error("failed to init telegram bot", logger.Error(err))
		return nil, err
	}

	return newTelegramNotifier(b, cfg.TelegramAdminChatID, log), nil
}

func newTelegramNotifier(bot sender, chatID int64, log logger.ILogger) *telegramNotifier {
	return &telegramNotifier{bot: bot, chat: &tele.Chat{ID: chatID}, log: log}
}

// Notify never fails the caller; delivery problems are only logged.
func (n *telegramNotifier) Notify(event string, subject fmt.Stringer) {
	text := fmt.Sprintf("🚕 %s: %s", event, subject.String())
	if _, err := n.bot.Send(n.chat, text); err != nil {
		n.log.Warning("failed to send telegram notification",
			logger.String("event", event),
			logger.Error(err),
		)
	}
}

type Nop struct{}

func (Nop) Notify(string, fmt.Stringer) {}
