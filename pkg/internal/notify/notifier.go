package notify

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Notification is what gets handed to the delivery collaborator for one
// recipient. Delivery (push, email, toast) happens outside this service.
type Notification struct {
	AccountID uint           `json:"account_id"`
	Topic     string         `json:"topic"`
	Title     string         `json:"title"`
	Body      string         `json:"body"`
	Avatar    *string        `json:"avatar"`
	Metadata  map[string]any `json:"metadata"`
}

type Sender interface {
	NotifyBatch(ctx context.Context, notifications []Notification) error
}

var N Sender = logSender{}

func Use(impl Sender) {
	N = impl
}

// logSender is the fallback when no delivery collaborator is wired in.
type logSender struct{}

func (logSender) NotifyBatch(_ context.Context, notifications []Notification) error {
	for _, item := range notifications {
		log.Debug().
			Uint("account_id", item.AccountID).
			Str("topic", item.Topic).
			Str("title", item.Title).
			Msg("Notification dropped, no sender configured...")
	}
	return nil
}
