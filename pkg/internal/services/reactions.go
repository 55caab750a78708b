package services

import (
	"sort"

	"gorm.io/gorm/clause"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

// ToggleReaction flips one (message, account, emoji) triple: removed when
// present, added when absent. Both arms are single keyed statements against
// the fact table, never a read-modify-write of the whole reaction set, so
// two accounts toggling the same emoji concurrently both land. Returns
// whether the triple exists afterwards.
func ToggleReaction(messageId uint, accountId uint, emoji string) (bool, error) {
	tx := database.C.Where(models.Reaction{
		MessageID: messageId,
		AccountID: accountId,
		Emoji:     emoji,
	}).Delete(&models.Reaction{})
	if tx.Error != nil {
		return false, tx.Error
	}
	if tx.RowsAffected > 0 {
		return false, nil
	}

	reaction := models.Reaction{
		MessageID: messageId,
		AccountID: accountId,
		Emoji:     emoji,
	}
	if err := database.C.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&reaction).Error; err != nil {
		return false, err
	}

	return true, nil
}

// ReactToMessage toggles the triple and pushes the resulting group state to
// everyone in the message's container.
func ReactToMessage(message models.Message, accountId uint, emoji string) ([]models.ReactionGroup, error) {
	added, err := ToggleReaction(message.ID, accountId, emoji)
	if err != nil {
		return nil, err
	}

	reactions, err := ListReactions(message.ID)
	if err != nil {
		return nil, err
	}
	groups := FoldReactions(reactions)

	PublishToContainer(message.Container(), models.UnifiedCommand{
		Action: models.CommandMessageReact,
		Payload: map[string]any{
			"message_id": message.ID,
			"account_id": accountId,
			"emoji":      emoji,
			"added":      added,
			"reactions":  groups,
		},
	})

	return groups, nil
}

func ListReactions(messageId uint) ([]models.Reaction, error) {
	var reactions []models.Reaction
	if err := database.C.Where("message_id = ?", messageId).
		Order("id ASC").
		Find(&reactions).Error; err != nil {
		return reactions, err
	}

	return reactions, nil
}

// FoldReactions groups fact rows into the wire view, one group per emoji.
func FoldReactions(reactions []models.Reaction) []models.ReactionGroup {
	grouped := make(map[string][]uint)
	var order []string
	for _, reaction := range reactions {
		if _, ok := grouped[reaction.Emoji]; !ok {
			order = append(order, reaction.Emoji)
		}
		grouped[reaction.Emoji] = append(grouped[reaction.Emoji], reaction.AccountID)
	}

	sort.Strings(order)

	groups := make([]models.ReactionGroup, 0, len(order))
	for _, emoji := range order {
		groups = append(groups, models.ReactionGroup{
			Emoji:    emoji,
			Count:    len(grouped[emoji]),
			Accounts: grouped[emoji],
		})
	}

	return groups
}

// AttachReactions decorates a page of messages with their reaction groups
// in one query.
func AttachReactions(messages []models.Message) error {
	if len(messages) == 0 {
		return nil
	}

	idRange := make([]uint, 0, len(messages))
	for _, message := range messages {
		idRange = append(idRange, message.ID)
	}

	var reactions []models.Reaction
	if err := database.C.Where("message_id IN ?", idRange).
		Order("id ASC").
		Find(&reactions).Error; err != nil {
		return err
	}

	byMessage := make(map[uint][]models.Reaction)
	for _, reaction := range reactions {
		byMessage[reaction.MessageID] = append(byMessage[reaction.MessageID], reaction)
	}

	for idx := range messages {
		messages[idx].Reactions = FoldReactions(byMessage[messages[idx].ID])
	}

	return nil
}
