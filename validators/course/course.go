package courseValidator

import (
	"elearning/models"
	"elearning/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	CourseKey   = "validatedCourse"
	QuestionKey = "validatedQuestion"
	AnswerKey   = "validatedAnswer"
	ReviewKey   = "validatedReview"
	ReplyKey    = "validatedReply"
)

// ContentRequest is one content item as sent by the admin dashboard.
type ContentRequest struct {
	ID             string        `json:"_id"`
	Title          string        `json:"title" validate:"required"`
	Description    string        `json:"description" validate:"required"`
	VideoURL       string        `json:"videoUrl" validate:"required"`
	VideoThumbnail models.Image  `json:"videoThumbnail"`
	VideoSection   string        `json:"videoSection"`
	VideoLength    float64       `json:"videoLength" validate:"gte=0"`
	VideoPlayer    string        `json:"videoPlayer"`
	Links          []models.Link `json:"links" validate:"dive"`
	Suggestion     string        `json:"suggestion"`
}

// CourseRequest is the body of create-course and edit-course. Thumbnail is
// a data URI or URL to upload; empty keeps the current one.
type CourseRequest struct {
	Name           string           `json:"name" validate:"required"`
	Description    string           `json:"description" validate:"required"`
	Categories     string           `json:"categories"`
	Price          float64          `json:"price" validate:"gte=0"`
	EstimatedPrice float64          `json:"estimatedPrice" validate:"gte=0"`
	Thumbnail      string           `json:"thumbnail"`
	Tags           string           `json:"tags" validate:"required"`
	Level          string           `json:"level" validate:"required"`
	DemoURL        string           `json:"demoUrl" validate:"required"`
	Benefits       []models.Title   `json:"benefits"`
	Prerequisites  []models.Title   `json:"prerequisites"`
	CourseData     []ContentRequest `json:"courseData" validate:"dive"`
}

type QuestionRequest struct {
	Question  string `json:"question" validate:"required"`
	CourseID  string `json:"courseId" validate:"required"`
	ContentID string `json:"contentId" validate:"required"`
}

type AnswerRequest struct {
	Answer     string `json:"answer" validate:"required"`
	CourseID   string `json:"courseId" validate:"required"`
	ContentID  string `json:"contentId" validate:"required"`
	QuestionID string `json:"questionId" validate:"required"`
}

type ReviewRequest struct {
	Review string `json:"review" validate:"required"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

type ReplyRequest struct {
	Comment  string `json:"comment" validate:"required"`
	CourseID string `json:"courseId" validate:"required"`
	ReviewID string `json:"reviewId" validate:"required"`
}

// Course validates create-course and edit-course bodies
func Course() fiber.Handler {
	return validators.Body[CourseRequest](CourseKey)
}

func Question() fiber.Handler {
	return validators.Body[QuestionRequest](QuestionKey)
}

func Answer() fiber.Handler {
	return validators.Body[AnswerRequest](AnswerKey)
}

func Review() fiber.Handler {
	return validators.Body[ReviewRequest](ReviewKey)
}

func Reply() fiber.Handler {
	return validators.Body[ReplyRequest](ReplyKey)
}
