package models

import "time"

// Account is a read-only mirror of the user directory. Identity, roles and
// presence are owned by the directory collaborator; this service never
// creates or edits these rows.
type Account struct {
	BaseModel

	Name       string     `json:"name" gorm:"uniqueIndex"`
	Nick       string     `json:"nick"`
	Email      string     `json:"email"`
	Avatar     *string    `json:"avatar"`
	Role       string     `json:"role"`
	IsOnline   bool       `json:"is_online"`
	LastSeenAt *time.Time `json:"last_seen_at"`
}
