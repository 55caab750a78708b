package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/database"
	"github.com/staylio/messaging/pkg/internal/models"
	"github.com/staylio/messaging/pkg/internal/server/exts"
	"github.com/staylio/messaging/pkg/internal/services"
	"gorm.io/gorm"
)

func toggleReaction(c *fiber.Ctx) error {
	user := currentUser(c)
	id, _ := c.ParamsInt("messageId")

	var data struct {
		Emoji string `json:"emoji" validate:"required,max=16"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	var message models.Message
	if err := database.C.Where("id = ?", id).Preload("Sender").First(&message).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "message was not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := services.CheckContainerWriteAccess(message.Container(), user.ID); err != nil {
		return fiber.NewError(fiber.StatusForbidden, err.Error())
	}

	if groups, err := services.ReactToMessage(message, user.ID, data.Emoji); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(groups)
	}
}
