package services

import (
	"errors"
	"sort"
	"strings"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

func scopeContainer(tx *gorm.DB, ref models.ContainerRef) *gorm.DB {
	if ref.IsChannel() {
		return tx.Where("channel_id = ?", ref.ID)
	}
	return tx.Where("conversation_id = ?", ref.ID)
}

func CountMessage(ref models.ContainerRef) int64 {
	var count int64
	if err := scopeContainer(database.C.Model(&models.Message{}), ref).
		Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// ListMessage returns a page of a container's history in canonical order,
// ascending by creation time. Clients must re-sort on every push insert and
// de-duplicate by uuid; arrival order carries no meaning.
func ListMessage(ref models.ContainerRef, take int, offset int) ([]models.Message, error) {
	if take > 100 {
		take = 100
	}

	var messages []models.Message
	if err := scopeContainer(database.C, ref).
		Limit(take).Offset(offset).
		Order("created_at ASC").
		Preload("Sender").
		Preload("ReplyTo").
		Find(&messages).Error; err != nil {
		return messages, err
	}

	if err := AttachReactions(messages); err != nil {
		return messages, err
	}

	return messages, nil
}

func GetMessage(ref models.ContainerRef, id uint) (models.Message, error) {
	var message models.Message
	if err := scopeContainer(database.C, ref).
		Where("id = ?", id).
		Preload("Sender").
		First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return message, ErrNotFound
		}
		return message, err
	}

	return message, nil
}

// NewMessage validates, persists and fans out one message. The content must
// survive trimming unless attachments ride along; a reply must point into
// the same container. Attachments were already uploaded by the storage
// collaborator, only their stable URLs are recorded here.
func NewMessage(message models.Message) (models.Message, error) {
	message.Content = strings.TrimSpace(message.Content)
	if len(message.Content) == 0 && len(message.Attachments) == 0 {
		return message, ErrEmptyContent
	}

	ref := message.Container()
	if message.ReplyToID != nil {
		if _, err := GetMessage(ref, *message.ReplyToID); err != nil {
			return message, ErrInvalidReply
		}
	}

	mentioned, err := ResolveMentions(message.Content, message.SenderID)
	if err == nil && len(mentioned) > 0 {
		message.Mentions = lo.Map(mentioned, func(item models.Account, index int) uint {
			return item.ID
		})
	}

	if err := database.C.Save(&message).Error; err != nil {
		return message, err
	}

	message, _ = GetMessage(ref, message.ID)

	PublishToContainer(ref, models.UnifiedCommand{
		Action:  models.CommandMessageNew,
		Payload: message,
	})

	DispatchMentionNotifications(message, mentioned)

	return message, nil
}

// MergeTimeline is the reconcile rule pushed clients follow and the one the
// gateway applies when replaying: insert, de-duplicate by uuid, then order
// by creation time. Feeding the same events in any arrival order yields the
// same timeline.
func MergeTimeline(existing []models.Message, incoming ...[]models.Message) []models.Message {
	merged := existing
	for _, batch := range incoming {
		merged = append(merged, batch...)
	}

	merged = lo.UniqBy(merged, func(item models.Message) string {
		return item.Uuid
	})

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].CreatedAt.Equal(merged[j].CreatedAt) {
			return merged[i].ID < merged[j].ID
		}
		return merged[i].CreatedAt.Before(merged[j].CreatedAt)
	})

	return merged
}
