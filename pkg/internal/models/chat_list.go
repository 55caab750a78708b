package models

import "time"

// ChatListItem is a projection only: recomputed from channel, conversation
// and message state on every read, never persisted.
type ChatListItem struct {
	Container   ContainerRef `json:"container"`
	Name        string       `json:"name"`
	LastMessage *Message     `json:"last_message"`
	Unread      int64        `json:"unread"`
	LastActive  time.Time    `json:"last_active"`
}
