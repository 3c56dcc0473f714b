package analyticsController

import (
	"elearning/controllers"
	"elearning/middleware"
	"elearning/models"
	"elearning/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	controllers.Deps
}

func NewAnalyticsController(deps controllers.Deps) *AnalyticsController {
	return &AnalyticsController{Deps: deps}
}

func (ac *AnalyticsController) respond(c *fiber.Ctx, name string, model any) error {
	data, err := utils.GenerateLast12MonthsData(c.UserContext(), ac.DB, model)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{name: data})
}

func (ac *AnalyticsController) GetUsersAnalytics(c *fiber.Ctx) error {
	return ac.respond(c, "users", &models.User{})
}

func (ac *AnalyticsController) GetCoursesAnalytics(c *fiber.Ctx) error {
	return ac.respond(c, "courses", &models.Course{})
}

func (ac *AnalyticsController) GetOrdersAnalytics(c *fiber.Ctx) error {
	return ac.respond(c, "orders", &models.Order{})
}
