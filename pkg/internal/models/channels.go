package models

import "gorm.io/datatypes"

type ChannelType = uint8

const (
	ChannelTypePublic = ChannelType(iota)
	ChannelTypePrivate
)

type Channel struct {
	BaseModel

	// Alias uniqueness is enforced against active rows only, so a
	// deactivated channel frees its alias. See services.CreateChannel.
	Alias       string                    `json:"alias" gorm:"index"`
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Topic       string                    `json:"topic"`
	Type        ChannelType               `json:"type"`
	Members     []ChannelMember           `json:"members"`
	Messages    []Message                 `json:"messages"`
	PinnedIDs   datatypes.JSONSlice[uint] `json:"pinned_ids"`
	Account     Account                   `json:"account"`
	AccountID   uint                      `json:"account_id"`
}

func (v Channel) DisplayText() string {
	return "#" + v.Name
}

func (v Channel) Container() ContainerRef {
	return ContainerRef{Kind: ContainerKindChannel, ID: v.ID}
}

type NotifyLevel = int8

const (
	NotifyLevelAll = NotifyLevel(iota)
	NotifyLevelMentioned
	NotifyLevelNone
)

type ChannelMember struct {
	BaseModel

	ChannelID     uint        `json:"channel_id" gorm:"uniqueIndex:idx_channel_member"`
	AccountID     uint        `json:"account_id" gorm:"uniqueIndex:idx_channel_member"`
	Channel       Channel     `json:"channel"`
	Account       Account     `json:"account"`
	Notify        NotifyLevel `json:"notify"`
	PowerLevel    int         `json:"power_level"`
	ReadingAnchor *uint       `json:"reading_anchor"`
}
