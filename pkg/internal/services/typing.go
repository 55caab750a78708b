package services

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

const (
	TypingTTLDefault = 5 * time.Second
	TypingTTLMin     = time.Second
	TypingTTLMax     = 30 * time.Second
)

// ClampTTL keeps the configured typing TTL inside sane bounds; a zero or
// negative configuration falls back to the default.
func ClampTTL(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return TypingTTLDefault
	}
	if ttl < TypingTTLMin {
		return TypingTTLMin
	}
	if ttl > TypingTTLMax {
		return TypingTTLMax
	}
	return ttl
}

func typingTTL() time.Duration {
	return ClampTTL(viper.GetDuration("typing.ttl"))
}

// FilterLiveIndicators drops everything at or past its deadline. Reads go
// through this instead of trusting a sweeper, so an indicator that was
// never stopped still disappears on time.
func FilterLiveIndicators(indicators []models.TypingIndicator, now time.Time) []models.TypingIndicator {
	out := make([]models.TypingIndicator, 0, len(indicators))
	for _, indicator := range indicators {
		if indicator.Live(now) {
			out = append(out, indicator)
		}
	}
	return out
}

// SetTypingStatus starts (or refreshes) the account's typing indicator in a
// container. Any previous indicator of that account, anywhere, is
// superseded. Expired rows are purged opportunistically on this write path;
// there is no background sweep.
func SetTypingStatus(ref models.ContainerRef, account models.Account) error {
	now := time.Now()

	if err := database.C.Where("expires_at <= ?", now).
		Delete(&models.TypingIndicator{}).Error; err != nil {
		log.Debug().Err(err).Msg("Unable to purge expired typing indicators...")
	}

	if err := database.C.Where("account_id = ?", account.ID).
		Delete(&models.TypingIndicator{}).Error; err != nil {
		return err
	}

	indicator := models.TypingIndicator{
		AccountID: account.ID,
		StartedAt: now,
		ExpiresAt: now.Add(typingTTL()),
	}
	if ref.IsChannel() {
		indicator.ChannelID = &ref.ID
	} else {
		indicator.ConversationID = &ref.ID
	}

	if err := database.C.Create(&indicator).Error; err != nil {
		return err
	}

	BroadcastTyping(ref, account, indicator)

	return nil
}

// ClearTypingStatus stops the account's indicator unconditionally.
func ClearTypingStatus(account models.Account) error {
	return database.C.Where("account_id = ?", account.ID).
		Delete(&models.TypingIndicator{}).Error
}

// ListTypingStatus returns only live indicators of a container.
func ListTypingStatus(ref models.ContainerRef) ([]models.TypingIndicator, error) {
	now := time.Now()

	tx := database.C.Where("expires_at > ?", now)
	if ref.IsChannel() {
		tx = tx.Where("channel_id = ?", ref.ID)
	} else {
		tx = tx.Where("conversation_id = ?", ref.ID)
	}

	var indicators []models.TypingIndicator
	if err := tx.Find(&indicators).Error; err != nil {
		return indicators, err
	}

	return FilterLiveIndicators(indicators, now), nil
}

// BroadcastTyping pushes the indicator to the other members of the
// container. Presence is best-effort: failures are logged and swallowed.
func BroadcastTyping(ref models.ContainerRef, account models.Account, indicator models.TypingIndicator) {
	idRange, err := ListContainerMemberIDs(ref)
	if err != nil {
		log.Debug().Err(err).Msg("Unable to resolve typing broadcast targets...")
		return
	}

	for _, target := range idRange {
		if target == account.ID {
			continue
		}
		PushCommand(target, models.UnifiedCommand{
			Action: models.CommandStatusTyping,
			Payload: map[string]any{
				"container":  ref,
				"account_id": account.ID,
				"account":    account,
				"expires_at": indicator.ExpiresAt,
			},
		})
	}
}
