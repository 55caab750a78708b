package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/files"
)

// uploadAttachment hands the payload to the storage collaborator and
// returns the stable reference a later message may carry. The message row
// itself never sees the binary.
func uploadAttachment(c *fiber.Ctx) error {
	if files.F == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "attachment storage is not configured")
	}

	header, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "attachment file is required")
	}

	in, err := header.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	defer in.Close()

	attachment, err := files.F.Upload(
		c.Context(),
		header.Filename,
		header.Header.Get(fiber.HeaderContentType),
		header.Size,
		in,
	)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(attachment)
}
