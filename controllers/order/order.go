package orderController

import (
	"elearning/controllers"
	"elearning/mailer"
	"elearning/middleware"
	"elearning/models"
	"elearning/utils"
	orderValidator "elearning/validators/order"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const orderDateLayout = "January 2, 2006"

var nowFunc = time.Now

// orderNumber is the short reference printed in the confirmation mail.
func orderNumber(courseID string) string {
	if len(courseID) > 6 {
		return courseID[:6]
	}
	return courseID
}

type OrderController struct {
	controllers.Deps
}

func NewOrderController(deps controllers.Deps) *OrderController {
	return &OrderController{Deps: deps}
}

// CreateOrder records a purchase. The steps are independent writes in the
// order below, nothing is rolled back when a later step fails.
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	reqData, ok := c.Locals(orderValidator.CreateOrderKey).(*orderValidator.CreateOrderRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()
	db := oc.DB.WithContext(ctx)

	if middleware.CurrentUser(c).HasCourse(reqData.CourseID) {
		return fiber.NewError(fiber.StatusBadRequest, "You have already purchased this course")
	}
	if !models.IsValidID(reqData.CourseID) {
		return &utils.InvalidIDError{Path: "_id"}
	}

	var course models.Course
	err := db.First(&course, "id = ?", reqData.CourseID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	if err != nil {
		return err
	}

	var user models.User
	err = db.First(&user, "id = ?", middleware.CurrentUser(c).ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}

	err = oc.Mailer.Send(ctx, mailer.Message{
		To:       user.Email,
		Subject:  "Order Confirmation",
		Template: mailer.TemplateOrderConfirmation,
		Data: mailer.OrderConfirmationData{Order: mailer.OrderSummary{
			ID:    orderNumber(course.ID),
			Name:  course.Name,
			Price: course.Price,
			Date:  nowFunc().Format(orderDateLayout),
		}},
	})
	if err != nil {
		oc.Log.Error().Err(err).Str("to", user.Email).Msg("Failed to send order confirmation")
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	user.AddCourse(course.ID)
	if err := db.Save(&user).Error; err != nil {
		return err
	}
	if err := oc.Sessions.SaveIfActive(ctx, &user); err != nil {
		return err
	}

	err = db.Create(&models.Notification{
		Title:   "New Order",
		Message: fmt.Sprintf("You have a new order from %s", course.Name),
		Status:  models.NotificationUnread,
		UserID:  user.ID,
	}).Error
	if err != nil {
		return err
	}

	if err := db.Model(&course).UpdateColumn("purchased", gorm.Expr("purchased + ?", 1)).Error; err != nil {
		return err
	}

	order := models.Order{
		CourseID:    course.ID,
		UserID:      user.ID,
		PaymentInfo: datatypes.JSONMap(reqData.PaymentInfo),
	}
	if err := db.Create(&order).Error; err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"order": order})
}

// GetAllOrders lists orders, newest first
func (oc *OrderController) GetAllOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := oc.DB.WithContext(c.UserContext()).Order("created_at DESC").Find(&orders).Error; err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"orders": orders})
}
