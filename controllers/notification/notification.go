package notificationController

import (
	"elearning/controllers"
	"elearning/middleware"
	"elearning/models"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type NotificationController struct {
	controllers.Deps
}

func NewNotificationController(deps controllers.Deps) *NotificationController {
	return &NotificationController{Deps: deps}
}

func (nc *NotificationController) list(c *fiber.Ctx) error {
	var notifications []models.Notification
	if err := nc.DB.WithContext(c.UserContext()).Order("created_at DESC").Find(&notifications).Error; err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"notifications": notifications})
}

// GetNotifications lists all notifications, newest first
func (nc *NotificationController) GetNotifications(c *fiber.Ctx) error {
	return nc.list(c)
}

// UpdateNotification marks a notification read and returns the refreshed list.
func (nc *NotificationController) UpdateNotification(c *fiber.Ctx) error {
	db := nc.DB.WithContext(c.UserContext())

	var notification models.Notification
	err := db.First(&notification, "id = ?", c.Params("id")).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Notification not found")
	}
	if err != nil {
		return err
	}

	if err := db.Model(&notification).Update("status", models.NotificationRead).Error; err != nil {
		return err
	}

	return nc.list(c)
}
