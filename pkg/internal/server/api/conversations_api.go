package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/server/exts"
	"github.com/staylio/messaging/pkg/internal/services"
)

// getOrCreateConversation resolves the caller's single conversation with the
// target account, creating it on first contact.
func getOrCreateConversation(c *fiber.Ctx) error {
	user := currentUser(c)

	var data struct {
		RelatedUser uint `json:"related_user" validate:"required"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	conversation, err := services.GetOrCreateConversation(user.ID, data.RelatedUser)
	if err != nil {
		if errors.Is(err, services.ErrInvalidParticipants) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(conversation)
}

func listConversations(c *fiber.Ctx) error {
	user := currentUser(c)

	if conversations, err := services.ListConversationOfUser(user.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(conversations)
	}
}
