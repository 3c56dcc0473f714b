package middleware

import (
	"elearning/cache"
	"elearning/models"
	"elearning/session"
	"errors"

	"github.com/gofiber/fiber/v2"
)

const userLocalsKey = "user"

// IsAuthenticated verifies the access token cookie and attaches the cached
// session user to the request. The database is never consulted.
func IsAuthenticated(sessions *session.Manager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.AccessCookie)
		if token == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Please login to access this resource")
		}

		// signature and expiry failures go to the error handler as jwt errors
		claims, err := sessions.ParseAccessToken(token)
		if err != nil {
			return err
		}
		if claims.ID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "access token is not valid")
		}

		user, err := sessions.Load(c.UserContext(), claims.ID)
		if errors.Is(err, cache.ErrNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Please login to access this resource")
		}
		if err != nil {
			return err
		}

		c.Locals(userLocalsKey, user)
		return c.Next()
	}
}

// CurrentUser returns the session user attached by IsAuthenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userLocalsKey).(*models.User)
	return user
}

// SetCurrentUser replaces the user attached to the request.
func SetCurrentUser(c *fiber.Ctx, user *models.User) {
	c.Locals(userLocalsKey, user)
}

// JsonResponse writes the success envelope: payload fields next to
// "success": true.
func JsonResponse(c *fiber.Ctx, statusCode int, payload fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return c.Status(statusCode).JSON(body)
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed!",
		"errors":  errors,
	})
}
