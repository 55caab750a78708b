package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/models"
	"github.com/staylio/messaging/pkg/internal/server/exts"
	"github.com/staylio/messaging/pkg/internal/services"
)

func listChannel(c *fiber.Ctx) error {
	if channels, err := services.ListChannel(); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(channels)
	}
}

func listOwnedChannel(c *fiber.Ctx) error {
	user := currentUser(c)

	if channels, err := services.ListChannelOfUser(user.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(channels)
	}
}

func getChannel(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("channelId")

	if channel, err := services.GetChannel(uint(id)); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else {
		return c.JSON(channel)
	}
}

func getChannelByAlias(c *fiber.Ctx) error {
	alias := c.Params("alias")

	if channel, err := services.GetChannelWithAlias(alias); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else {
		return c.JSON(channel)
	}
}

func createChannel(c *fiber.Ctx) error {
	user := currentUser(c)

	var data struct {
		Alias       string `json:"alias" validate:"required,lowercase,min=4,max=32"`
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Topic       string `json:"topic"`
		IsPrivate   bool   `json:"is_private"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channelType := models.ChannelTypePublic
	if data.IsPrivate {
		channelType = models.ChannelTypePrivate
	}

	channel := models.Channel{
		Alias:       data.Alias,
		Name:        data.Name,
		Description: data.Description,
		Topic:       data.Topic,
		Type:        channelType,
		AccountID:   user.ID,
	}

	channel, err := services.NewChannel(channel)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateName) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

func editChannel(c *fiber.Ctx) error {
	user := currentUser(c)
	id, _ := c.ParamsInt("channelId")

	var data struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description"`
		Topic       string `json:"topic"`
		IsPrivate   bool   `json:"is_private"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	channel, member, err := services.GetChannelIdentity(uint(id), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if member.PowerLevel < 50 {
		return fiber.NewError(fiber.StatusForbidden, "you must be a moderator of a channel to edit it")
	}

	channelType := models.ChannelTypePublic
	if data.IsPrivate {
		channelType = models.ChannelTypePrivate
	}

	if channel, err = services.EditChannel(channel, data.Name, data.Description, data.Topic, channelType); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(channel)
}

func deleteChannel(c *fiber.Ctx) error {
	user := currentUser(c)
	id, _ := c.ParamsInt("channelId")

	channel, member, err := services.GetChannelIdentity(uint(id), user.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else if member.PowerLevel < 100 {
		return fiber.NewError(fiber.StatusForbidden, "you must be the owner of a channel to deactivate it")
	}

	if err := services.DeleteChannel(channel); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
