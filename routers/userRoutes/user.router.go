package userProfileRoutes

import (
	"elearning/controllers"
	userProfileController "elearning/controllers/userControllers"
	"elearning/middleware"
	"elearning/models"
	"elearning/validators"
	userProfileValidator "elearning/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(router fiber.Router, deps controllers.Deps) {
	ctrl := userProfileController.NewUserController(deps)
	auth := middleware.IsAuthenticated(deps.Sessions)
	admin := middleware.AuthorizeRoles(models.RoleAdmin)

	router.Get("/me", auth, ctrl.GetUserInfo)
	router.Put("/update-user-info", auth, userProfileValidator.UpdateInfo(), ctrl.UpdateUserInfo)
	router.Put("/update-user-password", auth, userProfileValidator.UpdatePassword(), ctrl.UpdatePassword)
	router.Put("/update-user-avatar", auth, userProfileValidator.UpdateAvatar(), ctrl.UpdateAvatar)

	// Admin
	router.Get("/get-user", auth, admin, ctrl.GetAllUsers)
	router.Put("/update-user", auth, admin, userProfileValidator.UpdateRole(), ctrl.UpdateUserRole)
	router.Delete("/delete-user/:id", auth, admin, validators.ValidID(), ctrl.DeleteUser)
}
