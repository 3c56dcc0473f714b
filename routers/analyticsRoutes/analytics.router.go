package analyticsRoutes

import (
	"elearning/controllers"
	analyticsController "elearning/controllers/analytics"
	"elearning/middleware"
	"elearning/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(router fiber.Router, deps controllers.Deps) {
	ctrl := analyticsController.NewAnalyticsController(deps)
	auth := middleware.IsAuthenticated(deps.Sessions)
	admin := middleware.AuthorizeRoles(models.RoleAdmin)

	router.Get("/get-user-analytics", auth, admin, ctrl.GetUsersAnalytics)
	router.Get("/get-courses-analytics", auth, admin, ctrl.GetCoursesAnalytics)
	router.Get("/get-orders-analytics", auth, admin, ctrl.GetOrdersAnalytics)
}
