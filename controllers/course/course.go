package courseController

import (
	"context"
	"elearning/cache"
	"elearning/controllers"
	"elearning/media"
	"elearning/middleware"
	"elearning/models"
	courseValidator "elearning/validators/course"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const thumbnailFolder = "courses"

type CourseController struct {
	controllers.Deps
}

func NewCourseController(deps controllers.Deps) *CourseController {
	return &CourseController{Deps: deps}
}

func (cc *CourseController) findCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := cc.DB.WithContext(ctx).First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Course not found")
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// cacheCourse rewrites the public copy of course under its key. Cache
// failures are logged, the database stays authoritative.
func (cc *CourseController) cacheCourse(ctx context.Context, course *models.Course) {
	if err := cache.SetJSON(ctx, cc.Cache, cache.CourseKey(course.ID), course.Public(), cc.Cfg.CourseCacheTTL); err != nil {
		cc.Log.Warn().Err(err).Str("course", course.ID).Msg("Failed to cache course")
	}
}

func (cc *CourseController) forget(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := cc.Cache.Delete(ctx, key); err != nil {
			cc.Log.Warn().Err(err).Str("key", key).Msg("Failed to invalidate cache entry")
		}
	}
}

// contentFromRequest converts submitted content items, keeping the questions
// of items that already exist on current.
func contentFromRequest(items []courseValidator.ContentRequest, current *models.Course) datatypes.JSONSlice[models.CourseContent] {
	out := make(datatypes.JSONSlice[models.CourseContent], 0, len(items))
	for _, item := range items {
		content := models.CourseContent{
			ID:             item.ID,
			Title:          item.Title,
			Description:    item.Description,
			VideoURL:       item.VideoURL,
			VideoThumbnail: item.VideoThumbnail,
			VideoSection:   item.VideoSection,
			VideoLength:    item.VideoLength,
			VideoPlayer:    item.VideoPlayer,
			Links:          item.Links,
			Suggestion:     item.Suggestion,
		}
		if current != nil && item.ID != "" {
			if existing := current.FindContent(item.ID); existing != nil {
				content.Questions = existing.Questions
			}
		}
		out = append(out, content)
	}
	return out
}

func applyCourseRequest(course *models.Course, reqData *courseValidator.CourseRequest) {
	course.Name = reqData.Name
	course.Description = reqData.Description
	course.Categories = reqData.Categories
	course.Price = reqData.Price
	course.EstimatedPrice = reqData.EstimatedPrice
	course.Tags = reqData.Tags
	course.Level = reqData.Level
	course.DemoURL = reqData.DemoURL
	course.Benefits = reqData.Benefits
	course.Prerequisites = reqData.Prerequisites
	course.CourseData = contentFromRequest(reqData.CourseData, course)
	course.AssignContentIDs()
}

// UploadCourse creates a course, uploading its thumbnail first.
func (cc *CourseController) UploadCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.CourseKey).(*courseValidator.CourseRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()

	course := models.Course{
		Reviews: datatypes.JSONSlice[models.Review]{},
	}
	applyCourseRequest(&course, reqData)

	if reqData.Thumbnail != "" {
		img, err := cc.Media.Upload(ctx, reqData.Thumbnail, media.UploadOptions{Folder: thumbnailFolder})
		if err != nil {
			return err
		}
		course.Thumbnail = datatypes.NewJSONType(img)
	}

	if err := cc.DB.WithContext(ctx).Create(&course).Error; err != nil {
		return err
	}
	cc.forget(ctx, cache.AllCoursesKey)

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{"course": course})
}

func (cc *CourseController) EditCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals(courseValidator.CourseKey).(*courseValidator.CourseRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()

	course, err := cc.findCourse(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	applyCourseRequest(course, reqData)

	current := course.Thumbnail.Data()
	if reqData.Thumbnail != "" && reqData.Thumbnail != current.URL {
		if err := cc.Media.Destroy(ctx, current.PublicID); err != nil {
			cc.Log.Warn().Err(err).Str("course", course.ID).Msg("Failed to remove previous thumbnail")
		}
		img, err := cc.Media.Upload(ctx, reqData.Thumbnail, media.UploadOptions{Folder: thumbnailFolder})
		if err != nil {
			return err
		}
		course.Thumbnail = datatypes.NewJSONType(img)
	}

	if err := cc.DB.WithContext(ctx).Save(course).Error; err != nil {
		return err
	}
	cc.forget(ctx, cache.CourseKey(course.ID), cache.AllCoursesKey)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"course": course})
}

// GetSingleCourse returns the public view of a course, read through the cache.
func (cc *CourseController) GetSingleCourse(c *fiber.Ctx) error {
	ctx := c.UserContext()
	id := c.Params("id")

	var cached models.Course
	err := cache.GetJSON(ctx, cc.Cache, cache.CourseKey(id), &cached)
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"course": cached})
	}
	if !errors.Is(err, cache.ErrNotFound) {
		cc.Log.Warn().Err(err).Str("course", id).Msg("Course cache read failed")
	}

	course, err := cc.findCourse(ctx, id)
	if err != nil {
		return err
	}
	cc.cacheCourse(ctx, course)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"course": course.Public()})
}

// GetAllCourses returns the public view of every course, read through the cache.
func (cc *CourseController) GetAllCourses(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var cached []models.Course
	err := cache.GetJSON(ctx, cc.Cache, cache.AllCoursesKey, &cached)
	if err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"courses": cached})
	}
	if !errors.Is(err, cache.ErrNotFound) {
		cc.Log.Warn().Err(err).Msg("Course list cache read failed")
	}

	var courses []models.Course
	if err := cc.DB.WithContext(ctx).Order("created_at DESC").Find(&courses).Error; err != nil {
		return err
	}
	public := make([]models.Course, len(courses))
	for i := range courses {
		public[i] = courses[i].Public()
	}
	if err := cache.SetJSON(ctx, cc.Cache, cache.AllCoursesKey, public, 0); err != nil {
		cc.Log.Warn().Err(err).Msg("Failed to cache course list")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"courses": public})
}

// GetAdminAllCourses returns full course records, newest first.
func (cc *CourseController) GetAdminAllCourses(c *fiber.Ctx) error {
	var courses []models.Course
	if err := cc.DB.WithContext(c.UserContext()).Order("created_at DESC").Find(&courses).Error; err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"courses": courses})
}

// GetCourseByUser returns the full content of a purchased course.
func (cc *CourseController) GetCourseByUser(c *fiber.Ctx) error {
	id := c.Params("id")
	if !middleware.CurrentUser(c).HasCourse(id) {
		return fiber.NewError(fiber.StatusNotFound, "You are not eligible to access this course")
	}

	course, err := cc.findCourse(c.UserContext(), id)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"content": course.CourseData})
}

// DeleteCourse removes the course row and its cache entries.
func (cc *CourseController) DeleteCourse(c *fiber.Ctx) error {
	ctx := c.UserContext()

	course, err := cc.findCourse(ctx, c.Params("id"))
	if err != nil {
		return err
	}
	if err := cc.DB.WithContext(ctx).Delete(course).Error; err != nil {
		return err
	}
	cc.forget(ctx, cache.CourseKey(course.ID), cache.AllCoursesKey)

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Course deleted successfully",
	})
}
