package middleware

import (
	"elearning/models"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AuthorizeRoles returns a middleware that lets through only users whose role
// is one of roles. It must run after IsAuthenticated.
func AuthorizeRoles(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Please login to access this resource")
		}

		for _, role := range roles {
			if user.Role == role {
				return c.Next()
			}
		}

		return fiber.NewError(fiber.StatusForbidden,
			fmt.Sprintf("Role: %s is not allowed to access this resource", user.Role))
	}
}
