package courseController

import (
	"context"
	"elearning/cache"
	"elearning/mailer"
	"elearning/middleware"
	"elearning/models"
	"elearning/utils"
	courseValidator "elearning/validators/course"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var nowFunc = time.Now

func (cc *CourseController) notify(ctx context.Context, userID, title, message string) error {
	return cc.DB.WithContext(ctx).Create(&models.Notification{
		Title:   title,
		Message: message,
		Status:  models.NotificationUnread,
		UserID:  userID,
	}).Error
}

// canDiscuss reports whether user may read and write the question threads
// of a course: purchasers and admins.
func canDiscuss(user *models.User, courseID string) bool {
	return user.Role == models.RoleAdmin || user.HasCourse(courseID)
}

// findContent loads the course and the content item a question refers to.
// The threads carry purchaser-only content, so other users get a 404.
func (cc *CourseController) findContent(ctx context.Context, user *models.User, courseID, contentID string) (*models.Course, *models.CourseContent, error) {
	if !models.IsValidID(courseID) {
		return nil, nil, &utils.InvalidIDError{Path: "_id"}
	}
	if !canDiscuss(user, courseID) {
		return nil, nil, fiber.NewError(fiber.StatusNotFound, "You are not eligible to access this course")
	}
	course, err := cc.findCourse(ctx, courseID)
	if err != nil {
		return nil, nil, err
	}
	content := course.FindContent(contentID)
	if content == nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid content id")
	}
	return course, content, nil
}

// AddQuestion appends a question to a content item.
func (cc *CourseController) AddQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.QuestionKey).(*courseValidator.QuestionRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()
	user := middleware.CurrentUser(c)

	course, content, err := cc.findContent(ctx, user, reqData.CourseID, reqData.ContentID)
	if err != nil {
		return err
	}

	content.Questions = append(content.Questions, models.Question{
		ID:              uuid.NewString(),
		User:            user.Summary(),
		Question:        reqData.Question,
		QuestionReplies: []models.Answer{},
		CreatedAt:       nowFunc(),
	})

	if err := cc.DB.WithContext(ctx).Save(course).Error; err != nil {
		return err
	}
	if err := cc.notify(ctx, user.ID, "New Question Received", fmt.Sprintf("You have a new question in %s", content.Title)); err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{"course": course})
}

// AddAnswer replies to a question. The asker is notified in-app when they
// answer themselves and by email otherwise.
func (cc *CourseController) AddAnswer(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.AnswerKey).(*courseValidator.AnswerRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()
	user := middleware.CurrentUser(c)

	course, content, err := cc.findContent(ctx, user, reqData.CourseID, reqData.ContentID)
	if err != nil {
		return err
	}
	question := content.FindQuestion(reqData.QuestionID)
	if question == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid question id")
	}

	question.QuestionReplies = append(question.QuestionReplies, models.Answer{
		ID:        uuid.NewString(),
		User:      user.Summary(),
		Answer:    reqData.Answer,
		CreatedAt: nowFunc(),
	})
	if err := cc.DB.WithContext(ctx).Save(course).Error; err != nil {
		return err
	}

	if user.ID == question.User.ID {
		err = cc.notify(ctx, user.ID, "New Question Reply Received", fmt.Sprintf("You have a new question reply in %s", content.Title))
		if err != nil {
			return err
		}
	} else {
		err = cc.Mailer.Send(ctx, mailer.Message{
			To:       question.User.Email,
			Subject:  "Question reply",
			Template: mailer.TemplateQuestionReply,
			Data:     mailer.QuestionReplyData{Name: question.User.Name, Title: content.Title},
		})
		if err != nil {
			cc.Log.Error().Err(err).Str("to", question.User.Email).Msg("Failed to send question reply email")
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{"course": course})
}

// AddReview records a purchaser's rating and comment.
func (cc *CourseController) AddReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.ReviewKey).(*courseValidator.ReviewRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()
	user := middleware.CurrentUser(c)
	courseID := c.Params("id")

	if !user.HasCourse(courseID) {
		return fiber.NewError(fiber.StatusNotFound, "You are not eligible to access this course")
	}

	course, err := cc.findCourse(ctx, courseID)
	if err != nil {
		return err
	}

	course.AddReview(models.Review{
		User:      user.Summary(),
		Rating:    reqData.Rating,
		Comment:   reqData.Review,
		CreatedAt: nowFunc(),
	})
	if err := cc.DB.WithContext(ctx).Save(course).Error; err != nil {
		return err
	}
	cc.cacheCourse(ctx, course)
	cc.forget(ctx, cache.AllCoursesKey)

	if err := cc.notify(ctx, user.ID, "New Review Received", fmt.Sprintf("%s has given a review in %s", user.Name, course.Name)); err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"course": course})
}

// AddReplyToReview lets an admin answer a review.
func (cc *CourseController) AddReplyToReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.ReplyKey).(*courseValidator.ReplyRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()

	if !models.IsValidID(reqData.CourseID) {
		return &utils.InvalidIDError{Path: "_id"}
	}
	course, err := cc.findCourse(ctx, reqData.CourseID)
	if err != nil {
		return err
	}
	review := course.FindReview(reqData.ReviewID)
	if review == nil {
		return fiber.NewError(fiber.StatusNotFound, "Review not found")
	}

	review.CommentReplies = append(review.CommentReplies, models.CommentReply{
		ID:        uuid.NewString(),
		User:      middleware.CurrentUser(c).Summary(),
		Comment:   reqData.Comment,
		CreatedAt: nowFunc(),
	})
	if err := cc.DB.WithContext(ctx).Save(course).Error; err != nil {
		return err
	}
	cc.cacheCourse(ctx, course)
	cc.forget(ctx, cache.AllCoursesKey)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"course": course})
}
