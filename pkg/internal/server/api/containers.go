package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/models"
)

// The message, read and typing handlers are mounted under both the channel
// and the conversation group; these middlewares pin down which container
// kind the route addresses.

func channelContainer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("channelId")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid channel id")
	}
	c.Locals("container", models.ContainerRef{Kind: models.ContainerKindChannel, ID: uint(id)})
	return c.Next()
}

func directContainer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("conversationId")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid conversation id")
	}
	c.Locals("container", models.ContainerRef{Kind: models.ContainerKindDirect, ID: uint(id)})
	return c.Next()
}

func currentContainer(c *fiber.Ctx) models.ContainerRef {
	return c.Locals("container").(models.ContainerRef)
}
