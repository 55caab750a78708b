package database

import (
	"github.com/staylio/messaging/pkg/internal/models"
	"gorm.io/gorm"
)

var AutoMaintainRange = []any{
	&models.Account{},
	&models.Channel{},
	&models.ChannelMember{},
	&models.DirectConversation{},
	&models.ConversationMember{},
	&models.Message{},
	&models.Reaction{},
	&models.TypingIndicator{},
}

func RunMigration(source *gorm.DB) error {
	if err := source.AutoMigrate(AutoMaintainRange...); err != nil {
		return err
	}

	return nil
}
