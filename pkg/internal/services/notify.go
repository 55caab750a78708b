package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/staylio/messaging/pkg/internal/models"
	"github.com/staylio/messaging/pkg/internal/notify"
)

// DispatchMentionNotifications fans one notification per distinct mentioned
// account out to the delivery collaborator, honouring each member's notify
// level and skipping whoever is already attached to the container via the
// gateway.
func DispatchMentionNotifications(message models.Message, mentioned []models.Account) {
	if len(mentioned) == 0 {
		return
	}

	ref := message.Container()
	title, err := GetContainerDisplayName(ref, message.SenderID)
	if err != nil {
		log.Warn().Err(err).Msg("An error occurred when resolving notification title...")
		title = "a conversation"
	}

	var pending []notify.Notification
	for _, account := range mentioned {
		if account.ID == message.SenderID {
			continue
		}
		if CheckSubscribed(account.ID, ref) {
			// Already watching the container live, the push event suffices.
			continue
		}
		if ref.IsChannel() {
			if member, err := GetChannelMember(account.ID, ref.ID); err == nil && member.Notify == models.NotifyLevelNone {
				continue
			}
		}

		pending = append(pending, notify.Notification{
			AccountID: account.ID,
			Topic:     "messaging.mention",
			Title:     message.Sender.Nick + " in " + title,
			Body:      MessagePreview(message),
			Avatar:    message.Sender.Avatar,
			Metadata: map[string]any{
				"message_id": message.ID,
				"container":  ref,
				"sender_id":  message.SenderID,
			},
		})
	}

	pending = lo.UniqBy(pending, func(item notify.Notification) uint {
		return item.AccountID
	})
	if len(pending) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := notify.N.NotifyBatch(ctx, pending); err != nil {
		log.Warn().Err(err).Msg("An error occurred when trying notify user.")
	}
}
