package api

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/staylio/messaging/pkg/internal/directory"
)

func getUserinfo(c *fiber.Ctx) error {
	user := currentUser(c)
	return c.JSON(user)
}

// listUsers resolves a batch of account ids at once, used by clients to
// hydrate mention ids carried on messages.
func listUsers(c *fiber.Ctx) error {
	var idRange []uint
	for _, part := range strings.Split(c.Query("id"), ",") {
		if id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64); err == nil {
			idRange = append(idRange, uint(id))
		}
	}

	if accounts, err := directory.D.ListUsers(idRange); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	} else {
		return c.JSON(accounts)
	}
}

func getOthersInfo(c *fiber.Ctx) error {
	id, err := c.ParamsInt("accountId")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid account id")
	}

	if account, err := directory.D.GetUser(uint(id)); err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	} else {
		return c.JSON(account)
	}
}
