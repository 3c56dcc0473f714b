// Package server assembles the fiber application: middleware, static
// uploads, the /api/v1 route groups and the 404 catch-all.
package server

import (
	"elearning/controllers"
	"elearning/media"
	"elearning/middleware"
	analyticsRoutes "elearning/routers/analyticsRoutes"
	authRoutes "elearning/routers/authRoutes"
	courseRoutes "elearning/routers/courseRoutes"
	layoutRoutes "elearning/routers/layoutRoutes"
	notificationRoutes "elearning/routers/notificationRoutes"
	orderRoutes "elearning/routers/orderRoutes"
	userProfileRoutes "elearning/routers/userRoutes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const bodyLimit = 50 * 1024 * 1024

func New(deps controllers.Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "elearning",
		BodyLimit:    bodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: middleware.ErrorHandler(deps.Log),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Cfg.CorsOrigin,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowHeaders:     "Content-Type,Authorization",
		AllowCredentials: true,
	}))
	app.Use(middleware.RequestLogger(deps.Log))
	app.Use(recover.New())

	// Serve local uploads when Cloudinary is not configured
	app.Static(media.LocalURLPrefix, deps.Cfg.UploadDir)

	app.Get("/test", func(c *fiber.Ctx) error {
		return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"message": "API is working"})
	})

	api := app.Group("/api/v1")
	authRoutes.SetupAuthRoutes(api, deps)
	userProfileRoutes.SetupUserRoutes(api, deps)
	courseRoutes.SetupCourseRoutes(api, deps)
	orderRoutes.SetupOrderRoutes(api, deps)
	notificationRoutes.SetupNotificationRoutes(api, deps)
	analyticsRoutes.SetupAnalyticsRoutes(api, deps)
	layoutRoutes.SetupLayoutRoutes(api, deps)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Route %s not found", c.OriginalURL()))
	})

	return app
}
