package layoutValidator

import (
	"elearning/models"
	"elearning/validators"

	"github.com/gofiber/fiber/v2"
)

const LayoutKey = "validatedLayout"

// LayoutRequest carries the section named by Type. Image is a data URI or
// URL for the Banner section.
type LayoutRequest struct {
	Type       models.LayoutType `json:"type" validate:"required,oneof=Banner FAQ Categories"`
	Image      string            `json:"image" validate:"required_if=Type Banner"`
	Title      string            `json:"title" validate:"required_if=Type Banner"`
	SubTitle   string            `json:"subTitle"`
	FAQ        []models.FAQItem  `json:"faq" validate:"required_if=Type FAQ"`
	Categories []models.Category `json:"categories" validate:"required_if=Type Categories"`
}

func Layout() fiber.Handler {
	return validators.Body[LayoutRequest](LayoutKey)
}
