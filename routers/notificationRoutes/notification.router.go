package notificationRoutes

import (
	"elearning/controllers"
	notificationController "elearning/controllers/notification"
	"elearning/middleware"
	"elearning/models"
	"elearning/validators"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(router fiber.Router, deps controllers.Deps) {
	ctrl := notificationController.NewNotificationController(deps)
	auth := middleware.IsAuthenticated(deps.Sessions)
	admin := middleware.AuthorizeRoles(models.RoleAdmin)

	router.Get("/get-all-notification", auth, admin, ctrl.GetNotifications)
	router.Put("/update-notification/:id", auth, admin, validators.ValidID(), ctrl.UpdateNotification)
}
