package models

import "time"

// TypingIndicator is an ephemeral row, not part of conversation history.
// At most one per account: starting to type anywhere supersedes the
// previous indicator. Expiry is lazy, enforced at read time.
type TypingIndicator struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	AccountID      uint      `json:"account_id" gorm:"uniqueIndex"`
	ChannelID      *uint     `json:"channel_id"`
	ConversationID *uint     `json:"conversation_id"`
	StartedAt      time.Time `json:"started_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

func (v TypingIndicator) Container() ContainerRef {
	if v.ChannelID != nil {
		return ContainerRef{Kind: ContainerKindChannel, ID: *v.ChannelID}
	}
	return ContainerRef{Kind: ContainerKindDirect, ID: *v.ConversationID}
}

func (v TypingIndicator) Live(now time.Time) bool {
	return v.ExpiresAt.After(now)
}
