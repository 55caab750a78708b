package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/models"
	"github.com/staylio/messaging/pkg/internal/services"
)

func listChannelMembers(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("channelId")
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	channel, err := services.GetChannel(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	count, err := services.CountChannelMember(channel.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if members, err := services.ListChannelMember(channel.ID, take, offset); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(fiber.Map{
			"count": count,
			"data":  members,
		})
	}
}

func joinChannel(c *fiber.Ctx) error {
	user := currentUser(c)
	id, _ := c.ParamsInt("channelId")

	channel, err := services.GetChannel(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if channel.Type != models.ChannelTypePublic {
		// Private channels are join-by-invite; the owner joins on create.
		if _, err := services.GetChannelMember(user.ID, channel.ID); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "you cannot join a private channel by yourself")
		}
		return c.SendStatus(fiber.StatusOK)
	}

	if member, err := services.AddChannelMember(user, channel); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	} else {
		return c.JSON(member)
	}
}

func leaveChannel(c *fiber.Ctx) error {
	user := currentUser(c)
	id, _ := c.ParamsInt("channelId")

	channel, err := services.GetChannel(uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.RemoveChannelMember(user, channel); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
