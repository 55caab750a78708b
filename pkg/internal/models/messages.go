package models

import "gorm.io/datatypes"

type Attachment struct {
	ID   string `json:"id"`
	Url  string `json:"url"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// Message is immutable once created except for its reactions, which live in
// their own fact table. Exactly one of ChannelID and ConversationID is set.
type Message struct {
	BaseModel

	Uuid           string                          `json:"uuid" gorm:"uniqueIndex"`
	Content        string                          `json:"content"`
	Attachments    datatypes.JSONSlice[Attachment] `json:"attachments"`
	Mentions       datatypes.JSONSlice[uint]       `json:"mentions"`
	Sender         Account                         `json:"sender" gorm:"foreignKey:SenderID"`
	SenderID       uint                            `json:"sender_id"`
	ReplyToID      *uint                           `json:"reply_to_id"`
	ReplyTo        *Message                        `json:"reply_to" gorm:"foreignKey:ReplyToID"`
	ChannelID      *uint                           `json:"channel_id" gorm:"index"`
	ConversationID *uint                           `json:"conversation_id" gorm:"index"`

	Reactions []ReactionGroup `json:"reactions" gorm:"-"`
}

func (v Message) Container() ContainerRef {
	if v.ChannelID != nil {
		return ContainerRef{Kind: ContainerKindChannel, ID: *v.ChannelID}
	}
	return ContainerRef{Kind: ContainerKindDirect, ID: *v.ConversationID}
}
