package middleware

import (
	"elearning/media"
	"elearning/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// ErrorHandler translates handler errors into the error envelope.
func ErrorHandler(log zerolog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var (
			invalidID  *utils.InvalidIDError
			duplicate  *utils.DuplicateKeyError
			validation *utils.ValidationError
			jwtErr     *jwt.ValidationError
			fiberErr   *fiber.Error
		)

		switch {
		case errors.As(err, &validation):
			return ValidationErrorResponse(c, validation.Fields)
		case errors.As(err, &invalidID):
			return ErrorResponse(c, fiber.StatusBadRequest, invalidID.Error())
		case errors.As(err, &duplicate):
			return ErrorResponse(c, fiber.StatusBadRequest, duplicate.Error())
		case errors.Is(err, media.ErrNotImage):
			return ErrorResponse(c, fiber.StatusBadRequest, "Only image uploads are allowed")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return ErrorResponse(c, fiber.StatusBadRequest, "Duplicate key entered")
		case errors.Is(err, jwt.ErrTokenExpired):
			return ErrorResponse(c, fiber.StatusUnauthorized, "Your token has expired. Please try again.")
		case errors.As(err, &jwtErr):
			return ErrorResponse(c, fiber.StatusUnauthorized, "Your token is not valid. Please try again.")
		case errors.Is(err, gorm.ErrRecordNotFound):
			return ErrorResponse(c, fiber.StatusNotFound, "Resource not found")
		case errors.As(err, &fiberErr):
			return ErrorResponse(c, fiberErr.Code, fiberErr.Message)
		}

		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("Unhandled error")
		return ErrorResponse(c, fiber.StatusInternalServerError, err.Error())
	}
}
