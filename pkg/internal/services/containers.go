package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

// CheckContainerAccess verifies the account may act inside the container.
// Private channel history and all conversation access are member-only;
// public channel history is open to everyone.
func CheckContainerAccess(ref models.ContainerRef, user uint) error {
	switch ref.Kind {
	case models.ContainerKindChannel:
		channel, err := GetChannel(ref.ID)
		if err != nil {
			return err
		}
		if channel.Type == models.ChannelTypePublic {
			return nil
		}
		if _, err := GetChannelMember(user, channel.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPermissionDenied
			}
			return err
		}
		return nil
	case models.ContainerKindDirect:
		conversation, err := GetConversation(ref.ID)
		if err != nil {
			return err
		}
		if conversation.FirstAccountID != user && conversation.SecondAccountID != user {
			return ErrPermissionDenied
		}
		return nil
	default:
		return fmt.Errorf("unknown container kind: %s", ref.Kind)
	}
}

// CheckContainerWriteAccess is the stricter gate for mutations: writing
// always requires membership, public channel or not.
func CheckContainerWriteAccess(ref models.ContainerRef, user uint) error {
	if ref.IsChannel() {
		if _, err := GetChannelMember(user, ref.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPermissionDenied
			}
			return err
		}
		return nil
	}

	return CheckContainerAccess(ref, user)
}

// ListContainerMemberIDs returns the account ids belonging to a container,
// which is the fan-out audience for its events.
func ListContainerMemberIDs(ref models.ContainerRef) ([]uint, error) {
	var idRange []uint
	if ref.IsChannel() {
		var members []models.ChannelMember
		if err := database.C.Where(models.ChannelMember{ChannelID: ref.ID}).
			Find(&members).Error; err != nil {
			return idRange, err
		}
		for _, member := range members {
			idRange = append(idRange, member.AccountID)
		}
		return idRange, nil
	}

	conversation, err := GetConversation(ref.ID)
	if err != nil {
		return idRange, err
	}
	return []uint{conversation.FirstAccountID, conversation.SecondAccountID}, nil
}

// GetContainerDisplayName resolves what the container is called from the
// viewer's perspective: channels are named, conversations borrow the peer's
// nick.
func GetContainerDisplayName(ref models.ContainerRef, viewer uint) (string, error) {
	if ref.IsChannel() {
		channel, err := GetChannel(ref.ID)
		if err != nil {
			return "", err
		}
		return channel.DisplayText(), nil
	}

	conversation, err := GetConversation(ref.ID)
	if err != nil {
		return "", err
	}

	peer := conversation.FirstAccount
	if conversation.FirstAccountID == viewer {
		peer = conversation.SecondAccount
	}
	if len(peer.Nick) > 0 {
		return peer.Nick, nil
	}
	return peer.Name, nil
}
