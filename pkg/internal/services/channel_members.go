package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
)

func CountChannelMember(channelId uint) (int64, error) {
	var count int64
	if err := database.C.Where(models.ChannelMember{
		ChannelID: channelId,
	}).Model(&models.ChannelMember{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func ListChannelMember(channelId uint, take int, offset int) ([]models.ChannelMember, error) {
	if take > 100 {
		take = 100
	}

	var members []models.ChannelMember
	if err := database.C.
		Where(models.ChannelMember{ChannelID: channelId}).
		Limit(take).Offset(offset).
		Preload("Account").
		Find(&members).Error; err != nil {
		return members, err
	}

	return members, nil
}

func GetChannelMember(user uint, channelId uint) (models.ChannelMember, error) {
	var member models.ChannelMember
	if err := database.C.Where(models.ChannelMember{
		AccountID: user,
		ChannelID: channelId,
	}).Preload("Account").First(&member).Error; err != nil {
		return member, err
	}

	return member, nil
}

// AddChannelMember joins an account into a channel. Joining a channel the
// account already belongs to returns the existing membership, not an error,
// so clients can call it opportunistically.
func AddChannelMember(account models.Account, channel models.Channel) (models.ChannelMember, error) {
	if member, err := GetChannelMember(account.ID, channel.ID); err == nil {
		return member, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return member, err
	}

	member := models.ChannelMember{
		ChannelID: channel.ID,
		AccountID: account.ID,
	}

	if err := database.C.Save(&member).Error; err != nil {
		return member, fmt.Errorf("unable to join channel: %v", err)
	}

	InvalidateChannelCache(channel.ID)

	return member, nil
}

// RemoveChannelMember leaves a channel. Leaving a channel the account is not
// a member of is a no-op. The membership row is dropped for real so a later
// re-join starts fresh.
func RemoveChannelMember(account models.Account, channel models.Channel) error {
	var member models.ChannelMember
	if err := database.C.Where(models.ChannelMember{
		AccountID: account.ID,
		ChannelID: channel.ID,
	}).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if err := database.C.Unscoped().Delete(&member).Error; err != nil {
		return err
	}

	InvalidateChannelCache(channel.ID)
	UnsubscribeContainer(account.ID, channel.Container())

	return nil
}
