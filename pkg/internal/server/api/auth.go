package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"

	"github.com/staylio/messaging/pkg/internal/directory"
	"github.com/staylio/messaging/pkg/internal/models"
)

// Session issuance lives outside this service; we only validate the bearer
// token and resolve the account it names against the directory.
func authMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	tokenStr := strings.TrimPrefix(header, "Bearer ")
	if len(tokenStr) == 0 {
		tokenStr = c.Query("tk")
	}
	if len(tokenStr) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !token.Valid {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid bearer token")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "token subject missing")
	}
	accountId, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "token subject malformed")
	}

	account, err := directory.D.GetUser(uint(accountId))
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "account was not found")
	}

	c.Locals("user", account)

	return c.Next()
}

// authSoftMiddleware fills the user when a valid token rides along but lets
// anonymous requests through; public channel history is world-readable.
func authSoftMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") || len(c.Query("tk")) > 0 {
		return authMiddleware(c)
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) models.Account {
	return c.Locals("user").(models.Account)
}
