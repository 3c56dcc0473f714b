package orderValidator

import (
	"elearning/validators"

	"github.com/gofiber/fiber/v2"
)

const CreateOrderKey = "validatedOrder"

type CreateOrderRequest struct {
	CourseID    string         `json:"courseId" validate:"required"`
	PaymentInfo map[string]any `json:"payment_info"`
}

func CreateOrder() fiber.Handler {
	return validators.Body[CreateOrderRequest](CreateOrderKey)
}
