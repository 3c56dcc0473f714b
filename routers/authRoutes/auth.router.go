package authRoutes

import (
	"elearning/controllers"
	authController "elearning/controllers/auth"
	"elearning/middleware"
	authValidator "elearning/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(router fiber.Router, deps controllers.Deps) {
	ctrl := authController.NewAuthController(deps)

	router.Post("/registration", authValidator.Register(), ctrl.Register)
	router.Post("/activate-user", authValidator.Activate(), ctrl.Activate)
	router.Post("/login", authValidator.Login(), ctrl.Login)
	router.Get("/logout", middleware.IsAuthenticated(deps.Sessions), ctrl.Logout)
	router.Get("/refresh", ctrl.RefreshToken)
	router.Post("/social-auth", authValidator.SocialAuth(), ctrl.SocialAuth)
}
