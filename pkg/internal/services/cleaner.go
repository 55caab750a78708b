package services

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

// DoAutoDatabaseCleanup vacuums soft-deleted rows past their grace period
// and typing rows that expired long ago. Expiry semantics never depend on
// this job; reads filter on expires_at themselves.
func DoAutoDatabaseCleanup() {
	deadline := time.Now().Add(-60 * time.Minute)
	log.Debug().Time("deadline", deadline).Msg("Now cleaning up entire database...")

	// Only rows carrying a soft-delete column; reactions and typing
	// indicators are hard-deleted at their call sites.
	vacuumRange := []any{
		&models.Channel{},
		&models.ChannelMember{},
		&models.DirectConversation{},
		&models.ConversationMember{},
		&models.Message{},
	}

	var count int64
	for _, model := range vacuumRange {
		tx := database.C.Unscoped().Delete(model, "deleted_at IS NOT NULL AND deleted_at <= ?", deadline)
		if tx.Error != nil {
			log.Error().Err(tx.Error).Msg("An error occurred when running database cleanup...")
		}
		count += tx.RowsAffected
	}

	tx := database.C.Delete(&models.TypingIndicator{}, "expires_at <= ?", deadline)
	if tx.Error != nil {
		log.Error().Err(tx.Error).Msg("An error occurred when cleaning up typing indicators...")
	}
	count += tx.RowsAffected

	log.Debug().Int64("affected", count).Msg("Clean up entire database accomplished.")
}
