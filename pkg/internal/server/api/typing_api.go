package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/staylio/messaging/pkg/internal/services"
)

// Typing presence is best-effort: persistence failures here are logged and
// swallowed, the caller always gets a success.

func startTypingStatus(c *fiber.Ctx) error {
	user := currentUser(c)
	ref := currentContainer(c)

	if err := services.CheckContainerWriteAccess(ref, user.ID); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	if err := services.SetTypingStatus(ref, user); err != nil {
		log.Debug().Err(err).Msg("Unable to set typing status...")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func stopTypingStatus(c *fiber.Ctx) error {
	user := currentUser(c)

	if err := services.ClearTypingStatus(user); err != nil {
		log.Debug().Err(err).Msg("Unable to clear typing status...")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func listTypingStatus(c *fiber.Ctx) error {
	user := currentUser(c)
	ref := currentContainer(c)

	if err := services.CheckContainerAccess(ref, user.ID); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	if indicators, err := services.ListTypingStatus(ref); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(indicators)
	}
}
