package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/models"
	"github.com/staylio/messaging/pkg/internal/server/exts"
	"github.com/staylio/messaging/pkg/internal/services"
)

func listMessages(c *fiber.Ctx) error {
	ref := currentContainer(c)
	take := c.QueryInt("take", 100)
	offset := c.QueryInt("offset", 0)

	var viewer uint
	if user, ok := c.Locals("user").(models.Account); ok {
		viewer = user.ID
	}

	if err := services.CheckContainerAccess(ref, viewer); err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	count := services.CountMessage(ref)

	if messages, err := services.ListMessage(ref, take, offset); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(fiber.Map{
			"count": count,
			"data":  messages,
		})
	}
}

func newMessage(c *fiber.Ctx) error {
	user := currentUser(c)
	ref := currentContainer(c)

	var data struct {
		Uuid        string              `json:"uuid" validate:"required"`
		Content     string              `json:"content"`
		ReplyTo     *uint               `json:"reply_to"`
		Attachments []models.Attachment `json:"attachments"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	} else if len(data.Uuid) < 36 {
		return fiber.NewError(fiber.StatusBadRequest, "message uuid was not valid")
	}

	if err := services.CheckContainerWriteAccess(ref, user.ID); err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	message := models.Message{
		Uuid:        data.Uuid,
		Content:     data.Content,
		Attachments: data.Attachments,
		ReplyToID:   data.ReplyTo,
		SenderID:    user.ID,
	}
	if ref.IsChannel() {
		message.ChannelID = &ref.ID
	} else {
		message.ConversationID = &ref.ID
	}

	message, err := services.NewMessage(message)
	if err != nil {
		if errors.Is(err, services.ErrEmptyContent) || errors.Is(err, services.ErrInvalidReply) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(message)
}

func markContainerRead(c *fiber.Ctx) error {
	user := currentUser(c)
	ref := currentContainer(c)

	if err := services.CheckContainerWriteAccess(ref, user.ID); err != nil {
		if errors.Is(err, services.ErrPermissionDenied) {
			return fiber.NewError(fiber.StatusForbidden, err.Error())
		}
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	if err := services.MarkContainerRead(ref, user.ID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.SendStatus(fiber.StatusOK)
}
