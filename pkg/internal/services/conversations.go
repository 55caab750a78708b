package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

// ConversationPairKey is the identity of the unordered participant pair.
// Both orders of the same pair produce the same key.
func ConversationPairKey(userA, userB uint) string {
	if userA > userB {
		userA, userB = userB, userA
	}
	return fmt.Sprintf("%d_%d", userA, userB)
}

func GetConversation(id uint) (models.DirectConversation, error) {
	var conversation models.DirectConversation
	if err := database.C.Where("id = ?", id).
		Preload("FirstAccount").
		Preload("SecondAccount").
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return conversation, ErrNotFound
		}
		return conversation, err
	}

	return conversation, nil
}

func GetConversationMember(user uint, conversationId uint) (models.ConversationMember, error) {
	var member models.ConversationMember
	if err := database.C.Where(models.ConversationMember{
		AccountID:      user,
		ConversationID: conversationId,
	}).First(&member).Error; err != nil {
		return member, err
	}

	return member, nil
}

// GetOrCreateConversation resolves the single conversation between two
// accounts, creating it at most once. Concurrent first-calls from both
// participants race on the pair key's unique index: the loser's insert
// affects no rows and the follow-up lookup converges on the winner's row.
func GetOrCreateConversation(userA, userB uint) (models.DirectConversation, error) {
	var conversation models.DirectConversation
	if userA == userB {
		return conversation, ErrInvalidParticipants
	}

	key := ConversationPairKey(userA, userB)
	if err := database.C.Where(models.DirectConversation{PairKey: key}).
		First(&conversation).Error; err == nil {
		return conversation, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return conversation, err
	}

	first, second := userA, userB
	if first > second {
		first, second = second, first
	}

	conversation = models.DirectConversation{
		PairKey:         key,
		FirstAccountID:  first,
		SecondAccountID: second,
		Members: []models.ConversationMember{
			{AccountID: first},
			{AccountID: second},
		},
	}

	result := database.C.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "pair_key"}},
			DoNothing: true,
		}).
		Create(&conversation)
	if result.Error != nil {
		return conversation, result.Error
	}

	if result.RowsAffected == 0 {
		// Lost the race, someone else created it in between.
		if err := database.C.Where(models.DirectConversation{PairKey: key}).
			First(&conversation).Error; err != nil {
			return conversation, err
		}
	}

	return conversation, nil
}

func ListConversationOfUser(user uint) ([]models.DirectConversation, error) {
	var members []models.ConversationMember
	if err := database.C.Where("account_id = ?", user).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("unable to get conversation identities: %v", err)
	}

	var idRange []uint
	for _, member := range members {
		idRange = append(idRange, member.ConversationID)
	}

	var conversations []models.DirectConversation
	if len(idRange) == 0 {
		return conversations, nil
	}
	if err := database.C.Where("id IN ?", idRange).
		Preload("FirstAccount").
		Preload("SecondAccount").
		Find(&conversations).Error; err != nil {
		return conversations, err
	}

	return conversations, nil
}
