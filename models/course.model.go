package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Title is a single-line list entry (benefits, prerequisites).
type Title struct {
	Title string `json:"title"`
}

// Course is a catalog entry. Content items, questions and reviews are kept
// as JSON documents inside the row.
type Course struct {
	Base
	Name           string                             `gorm:"not null" json:"name"`
	Description    string                             `gorm:"type:text;not null" json:"description"`
	Categories     string                             `json:"categories"`
	Price          float64                            `gorm:"not null" json:"price"`
	EstimatedPrice float64                            `json:"estimatedPrice,omitempty"`
	Thumbnail      datatypes.JSONType[Image]          `json:"thumbnail"`
	Tags           string                             `json:"tags"`
	Level          string                             `json:"level"`
	DemoURL        string                             `json:"demoUrl"`
	Benefits       datatypes.JSONSlice[Title]         `json:"benefits"`
	Prerequisites  datatypes.JSONSlice[Title]         `json:"prerequisites"`
	Reviews        datatypes.JSONSlice[Review]        `json:"reviews"`
	CourseData     datatypes.JSONSlice[CourseContent] `json:"courseData"`
	Ratings        float64                            `gorm:"default:0" json:"ratings"`
	RatingSum      int                                `gorm:"default:0" json:"ratingSum"`
	RatingCount    int                                `gorm:"default:0" json:"ratingCount"`
	Purchased      int                                `gorm:"default:0" json:"purchased"`
}

// Link is an external resource attached to a content item.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// CourseContent is one video lesson of a course.
type CourseContent struct {
	ID             string     `json:"_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	VideoURL       string     `json:"videoUrl,omitempty"`
	VideoThumbnail Image      `json:"videoThumbnail"`
	VideoSection   string     `json:"videoSection"`
	VideoLength    float64    `json:"videoLength"`
	VideoPlayer    string     `json:"videoPlayer"`
	Links          []Link     `json:"links,omitempty"`
	Suggestion     string     `json:"suggestion,omitempty"`
	Questions      []Question `json:"questions,omitempty"`
}

// Question is asked by a user on a content item.
type Question struct {
	ID              string      `json:"_id"`
	User            UserSummary `json:"user"`
	Question        string      `json:"question"`
	QuestionReplies []Answer    `json:"questionReplies"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Answer is a reply to a Question.
type Answer struct {
	ID        string      `json:"_id"`
	User      UserSummary `json:"user"`
	Answer    string      `json:"answer"`
	CreatedAt time.Time   `json:"createdAt"`
}

// Review is a rated comment left by a purchaser.
type Review struct {
	ID             string         `json:"_id"`
	User           UserSummary    `json:"user"`
	Rating         int            `json:"rating"`
	Comment        string         `json:"comment"`
	CommentReplies []CommentReply `json:"commentReplies"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// CommentReply is an admin reply to a Review.
type CommentReply struct {
	ID        string      `json:"_id"`
	User      UserSummary `json:"user"`
	Comment   string      `json:"comment"`
	CreatedAt time.Time   `json:"createdAt"`
}

// AssignContentIDs gives every content item without an ID a fresh one.
func (c *Course) AssignContentIDs() {
	for i := range c.CourseData {
		if c.CourseData[i].ID == "" {
			c.CourseData[i].ID = uuid.NewString()
		}
	}
}

// FindContent returns the content item with id, or nil.
func (c *Course) FindContent(id string) *CourseContent {
	for i := range c.CourseData {
		if c.CourseData[i].ID == id {
			return &c.CourseData[i]
		}
	}
	return nil
}

// FindReview returns the review with id, or nil.
func (c *Course) FindReview(id string) *Review {
	for i := range c.Reviews {
		if c.Reviews[i].ID == id {
			return &c.Reviews[i]
		}
	}
	return nil
}

// AddReview appends r and folds its rating into the running average.
func (c *Course) AddReview(r Review) *Review {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CommentReplies == nil {
		r.CommentReplies = []CommentReply{}
	}
	c.Reviews = append(c.Reviews, r)
	c.RatingSum += r.Rating
	c.RatingCount++
	c.Ratings = float64(c.RatingSum) / float64(c.RatingCount)
	return &c.Reviews[len(c.Reviews)-1]
}

// FindQuestion returns the question with id on this content item, or nil.
func (cc *CourseContent) FindQuestion(id string) *Question {
	for i := range cc.Questions {
		if cc.Questions[i].ID == id {
			return &cc.Questions[i]
		}
	}
	return nil
}

// Public returns a copy of the course without the purchaser-only content
// fields: video URLs, suggestions, questions and links.
func (c *Course) Public() Course {
	out := *c
	data := make([]CourseContent, len(c.CourseData))
	for i, item := range c.CourseData {
		item.VideoURL = ""
		item.Suggestion = ""
		item.Questions = nil
		item.Links = nil
		data[i] = item
	}
	out.CourseData = data
	return out
}
