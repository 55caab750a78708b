package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

// NextAnchor advances a reading anchor monotonically: marking read never
// moves it backwards, so a stale mark-read racing a fresh one cannot
// resurrect unread messages.
func NextAnchor(current *uint, latest uint) uint {
	if current != nil && *current > latest {
		return *current
	}
	return latest
}

// SortChatList orders items by last activity, most recent first.
func SortChatList(items []models.ChatListItem) []models.ChatListItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].LastActive.After(items[j].LastActive)
	})
	return items
}

func lastMessageOf(ref models.ContainerRef) *models.Message {
	var message models.Message
	if err := scopeContainer(database.C, ref).
		Order("created_at DESC").
		Preload("Sender").
		First(&message).Error; err != nil {
		return nil
	}
	return &message
}

func countUnread(ref models.ContainerRef, viewer uint, anchor *uint) int64 {
	tx := scopeContainer(database.C.Model(&models.Message{}), ref).
		Where("sender_id <> ?", viewer)
	if anchor != nil {
		tx = tx.Where("id > ?", *anchor)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return 0
	}
	return count
}

// MarkContainerRead resets the viewer's unread count of a container to zero
// by sliding their reading anchor up to the latest message. The update is a
// single GREATEST expression, so concurrent marks cannot lose against each
// other.
func MarkContainerRead(ref models.ContainerRef, viewer uint) error {
	last := lastMessageOf(ref)
	if last == nil {
		return nil
	}

	var tx *gorm.DB
	var current *uint
	if ref.IsChannel() {
		if member, err := GetChannelMember(viewer, ref.ID); err == nil {
			current = member.ReadingAnchor
		}
		tx = database.C.Model(&models.ChannelMember{}).
			Where("channel_id = ? AND account_id = ?", ref.ID, viewer)
	} else {
		if member, err := GetConversationMember(viewer, ref.ID); err == nil {
			current = member.ReadingAnchor
		}
		tx = database.C.Model(&models.ConversationMember{}).
			Where("conversation_id = ? AND account_id = ?", ref.ID, viewer)
	}

	// The SQL expression is authoritative under concurrency; NextAnchor
	// mirrors it for the pushed payload.
	anchor := NextAnchor(current, last.ID)

	if err := tx.Updates(map[string]any{
		"reading_anchor": gorm.Expr("GREATEST(COALESCE(reading_anchor, 0), ?)", last.ID),
	}).Error; err != nil {
		return err
	}

	PushCommand(viewer, models.UnifiedCommand{
		Action: models.CommandChatsRead,
		Payload: map[string]any{
			"container": ref,
			"anchor":    anchor,
		},
	})

	return nil
}

// BuildChatList merges the viewer's channels and conversations into one
// recency-sorted list with unread counts. Nothing here is persisted; the
// projection is recomputed from container and message state on every call.
func BuildChatList(viewer models.Account) ([]models.ChatListItem, error) {
	var items []models.ChatListItem

	channels, err := ListChannelOfUser(viewer.ID)
	if err != nil {
		return items, err
	}
	for _, channel := range channels {
		ref := channel.Container()
		item := models.ChatListItem{
			Container:  ref,
			Name:       channel.DisplayText(),
			LastActive: channel.UpdatedAt,
		}
		if member, err := GetChannelMember(viewer.ID, channel.ID); err == nil {
			item.Unread = countUnread(ref, viewer.ID, member.ReadingAnchor)
		}
		if last := lastMessageOf(ref); last != nil {
			item.LastMessage = last
			item.LastActive = last.CreatedAt
		}
		items = append(items, item)
	}

	conversations, err := ListConversationOfUser(viewer.ID)
	if err != nil {
		return items, err
	}
	for _, conversation := range conversations {
		ref := conversation.Container()
		name, _ := GetContainerDisplayName(ref, viewer.ID)
		item := models.ChatListItem{
			Container:  ref,
			Name:       name,
			LastActive: conversation.UpdatedAt,
		}
		if member, err := GetConversationMember(viewer.ID, conversation.ID); err == nil {
			item.Unread = countUnread(ref, viewer.ID, member.ReadingAnchor)
		}
		if last := lastMessageOf(ref); last != nil {
			item.LastMessage = last
			item.LastActive = last.CreatedAt
		}
		items = append(items, item)
	}

	return SortChatList(items), nil
}
