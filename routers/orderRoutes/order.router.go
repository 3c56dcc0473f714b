package orderRoutes

import (
	"elearning/controllers"
	orderController "elearning/controllers/order"
	"elearning/middleware"
	"elearning/models"
	orderValidator "elearning/validators/order"

	"github.com/gofiber/fiber/v2"
)

func SetupOrderRoutes(router fiber.Router, deps controllers.Deps) {
	ctrl := orderController.NewOrderController(deps)
	auth := middleware.IsAuthenticated(deps.Sessions)

	router.Post("/order", auth, orderValidator.CreateOrder(), ctrl.CreateOrder)
	router.Get("/get-orders", auth, middleware.AuthorizeRoles(models.RoleAdmin), ctrl.GetAllOrders)
}
