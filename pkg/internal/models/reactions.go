package models

import "time"

// Reaction is one fact row per (message, account, emoji); the unique index
// makes the triple the state, so a toggle is a keyed insert or delete and
// concurrent reactors can never overwrite each other. Rows are hard-deleted,
// no soft-delete column: a lingering tombstone would block re-toggling.
type Reaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	MessageID uint      `json:"message_id" gorm:"uniqueIndex:idx_reaction_triple"`
	AccountID uint      `json:"account_id" gorm:"uniqueIndex:idx_reaction_triple"`
	Emoji     string    `json:"emoji" gorm:"uniqueIndex:idx_reaction_triple"`
}

// ReactionGroup is the wire view of one emoji on one message.
type ReactionGroup struct {
	Emoji    string `json:"emoji"`
	Count    int    `json:"count"`
	Accounts []uint `json:"accounts"`
}
