package courseRoutes

import (
	"elearning/controllers"
	courseController "elearning/controllers/course"
	"elearning/middleware"
	"elearning/models"
	"elearning/validators"
	courseValidator "elearning/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, content and review routes
func SetupCourseRoutes(router fiber.Router, deps controllers.Deps) {
	ctrl := courseController.NewCourseController(deps)
	auth := middleware.IsAuthenticated(deps.Sessions)
	admin := middleware.AuthorizeRoles(models.RoleAdmin)

	// Catalog
	router.Get("/get-course/:id", validators.ValidID(), ctrl.GetSingleCourse)
	router.Get("/get-courses", ctrl.GetAllCourses)
	router.Get("/get-course-content/:id", auth, validators.ValidID(), ctrl.GetCourseByUser)

	// Questions and reviews
	router.Put("/add-question", auth, courseValidator.Question(), ctrl.AddQuestion)
	router.Put("/add-answer", auth, courseValidator.Answer(), ctrl.AddAnswer)
	router.Put("/add-review/:id", auth, validators.ValidID(), courseValidator.Review(), ctrl.AddReview)
	router.Put("/add-reply", auth, admin, courseValidator.Reply(), ctrl.AddReplyToReview)

	// Admin
	router.Post("/create-course", auth, admin, courseValidator.Course(), ctrl.UploadCourse)
	router.Put("/edit-course/:id", auth, admin, validators.ValidID(), courseValidator.Course(), ctrl.EditCourse)
	router.Get("/get-admin-courses", auth, admin, ctrl.GetAdminAllCourses)
	router.Delete("/delete-course/:id", auth, admin, validators.ValidID(), ctrl.DeleteCourse)
}
