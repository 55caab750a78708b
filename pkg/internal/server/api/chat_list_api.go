package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/services"
)

func getChatList(c *fiber.Ctx) error {
	user := currentUser(c)

	if items, err := services.BuildChatList(user); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(items)
	}
}
