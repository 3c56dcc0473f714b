package layoutRoutes

import (
	"elearning/controllers"
	layoutController "elearning/controllers/layout"
	"elearning/middleware"
	"elearning/models"
	layoutValidator "elearning/validators/layout"

	"github.com/gofiber/fiber/v2"
)

func SetupLayoutRoutes(router fiber.Router, deps controllers.Deps) {
	ctrl := layoutController.NewLayoutController(deps)
	auth := middleware.IsAuthenticated(deps.Sessions)
	admin := middleware.AuthorizeRoles(models.RoleAdmin)

	router.Post("/create-layout", auth, admin, layoutValidator.Layout(), ctrl.CreateLayout)
	router.Put("/edit-layout", auth, admin, layoutValidator.Layout(), ctrl.EditLayout)
	router.Get("/get-layout/:type?", auth, ctrl.GetLayoutByType)
}
