package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/inkwell-blog/inkwell/pkg/internal/services"
)

func authMiddleware(c *fiber.Ctx) error {
	tokenString := c.Get(fiber.HeaderAuthorization)
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if len(tokenString) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "authorization bearer token is required")
	}

	user, err := services.AuthenticateToken(tokenString)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	c.Locals("user", user)

	return c.Next()
}
