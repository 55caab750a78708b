package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"gorm.io/gorm"

	localCache "github.com/staylio/messaging/pkg/internal/cache"
	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

var channelAliasPattern = regexp.MustCompile("^[a-z0-9-]+$")

func GetChannelAliasAvailability(alias string) error {
	if !channelAliasPattern.MatchString(alias) {
		return fmt.Errorf("channel alias should only contains lowercase letters, numbers, and hyphens")
	}
	return nil
}

type channelIdentityCacheEntry struct {
	Channel       models.Channel
	ChannelMember models.ChannelMember
}

func GetChannelIdentityCacheKey(channelId uint, user uint) string {
	return fmt.Sprintf("channel-identity-%d#%d", channelId, user)
}

func CacheChannelIdentity(channel models.Channel, member models.ChannelMember, user uint) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	_ = marshal.Set(
		contx,
		GetChannelIdentityCacheKey(channel.ID, user),
		channelIdentityCacheEntry{channel, member},
		store.WithTags([]string{"channel-identity", fmt.Sprintf("channel#%d", channel.ID), fmt.Sprintf("user#%d", user)}),
	)
}

func InvalidateChannelCache(channelId uint) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	_ = marshal.Invalidate(
		contx,
		store.WithInvalidateTags([]string{fmt.Sprintf("channel#%d", channelId)}),
	)
}

// GetChannelIdentity resolves a channel together with the caller's
// membership in it, cached per (channel, user).
func GetChannelIdentity(channelId uint, user uint) (models.Channel, models.ChannelMember, error) {
	cacheManager := cache.New[any](localCache.S)
	marshal := marshaler.New(cacheManager)
	contx := context.Background()

	if val, err := marshal.Get(contx, GetChannelIdentityCacheKey(channelId, user), new(channelIdentityCacheEntry)); err == nil {
		entry := val.(*channelIdentityCacheEntry)
		return entry.Channel, entry.ChannelMember, nil
	}

	channel, member, err := GetAvailableChannel(channelId, user)
	if err == nil {
		CacheChannelIdentity(channel, member, user)
	}

	return channel, member, err
}

func GetChannel(id uint) (models.Channel, error) {
	var channel models.Channel
	if err := database.C.Where("id = ?", id).Preload("Account").First(&channel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return channel, ErrNotFound
		}
		return channel, err
	}

	return channel, nil
}

func GetChannelWithAlias(alias string) (models.Channel, error) {
	var channel models.Channel
	if err := database.C.Where(models.Channel{Alias: alias}).Preload("Account").First(&channel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return channel, ErrNotFound
		}
		return channel, err
	}

	return channel, nil
}

func GetAvailableChannel(id uint, user uint) (models.Channel, models.ChannelMember, error) {
	var member models.ChannelMember
	channel, err := GetChannel(id)
	if err != nil {
		return channel, member, err
	}

	if err := database.C.Where(models.ChannelMember{
		AccountID: user,
		ChannelID: channel.ID,
	}).First(&member).Error; err != nil {
		return channel, member, fmt.Errorf("channel principal not found: %v", err.Error())
	}

	return channel, member, nil
}

// ListChannel returns every active channel. Channel existence is always
// discoverable; only private message history is gated on membership.
func ListChannel() ([]models.Channel, error) {
	var channels []models.Channel
	if err := database.C.Preload("Account").Find(&channels).Error; err != nil {
		return channels, err
	}

	return channels, nil
}

func ListChannelOfUser(user uint) ([]models.Channel, error) {
	var members []models.ChannelMember
	if err := database.C.Where("account_id = ?", user).Find(&members).Error; err != nil {
		return nil, fmt.Errorf("unable to get channel identities: %v", err)
	}

	var idRange []uint
	for _, member := range members {
		idRange = append(idRange, member.ChannelID)
	}

	var channels []models.Channel
	if err := database.C.Where("id IN ?", idRange).Preload("Account").Find(&channels).Error; err != nil {
		return channels, err
	}

	return channels, nil
}

// NewChannel creates a channel and auto-joins the creator with an elevated
// power level. The alias must not collide with another active channel.
func NewChannel(channel models.Channel) (models.Channel, error) {
	if err := GetChannelAliasAvailability(channel.Alias); err != nil {
		return channel, err
	}

	var count int64
	if err := database.C.Model(&models.Channel{}).
		Where("alias = ?", channel.Alias).
		Count(&count).Error; err != nil {
		return channel, err
	} else if count > 0 {
		return channel, ErrDuplicateName
	}

	channel.Members = []models.ChannelMember{
		{AccountID: channel.AccountID, PowerLevel: 100},
	}

	err := database.C.Save(&channel).Error
	return channel, err
}

func EditChannel(channel models.Channel, name, description, topic string, channelType models.ChannelType) (models.Channel, error) {
	channel.Name = name
	channel.Description = description
	channel.Topic = topic
	channel.Type = channelType

	err := database.C.Save(&channel).Error

	if err == nil {
		InvalidateChannelCache(channel.ID)
		PublishToContainer(channel.Container(), models.UnifiedCommand{
			Action:  models.CommandSystemChanges,
			Payload: channel,
		})
	}

	return channel, err
}

// DeleteChannel deactivates a channel. The row is soft-deleted so messages
// referencing it stay resolvable; the vacuum job reclaims it much later.
func DeleteChannel(channel models.Channel) error {
	if err := database.C.Delete(&channel).Error; err != nil {
		return err
	}

	InvalidateChannelCache(channel.ID)
	PublishToContainer(channel.Container(), models.UnifiedCommand{
		Action: models.CommandSystemChanges,
		Payload: map[string]any{
			"container": channel.Container(),
			"removed":   true,
		},
	})
	UnsubscribeAllWithContainer(channel.Container())

	return nil
}
