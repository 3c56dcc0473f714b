package layoutController

import (
	"context"
	"elearning/controllers"
	"elearning/media"
	"elearning/middleware"
	"elearning/models"
	layoutValidator "elearning/validators/layout"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const bannerFolder = "layout"

type LayoutController struct {
	controllers.Deps
}

func NewLayoutController(deps controllers.Deps) *LayoutController {
	return &LayoutController{Deps: deps}
}

func (lc *LayoutController) findByType(ctx context.Context, layoutType models.LayoutType) (*models.Layout, error) {
	var layout models.Layout
	err := lc.DB.WithContext(ctx).First(&layout, "type = ?", layoutType).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s layout not found", layoutType))
	}
	if err != nil {
		return nil, err
	}
	return &layout, nil
}

// apply copies the section named by reqData.Type onto layout. A Banner
// image that differs from the stored one replaces the previous upload.
func (lc *LayoutController) apply(ctx context.Context, layout *models.Layout, reqData *layoutValidator.LayoutRequest) error {
	layout.Type = reqData.Type

	switch reqData.Type {
	case models.LayoutBanner:
		banner := layout.Banner.Data()
		if reqData.Image != banner.Image.URL {
			if err := lc.Media.Destroy(ctx, banner.Image.PublicID); err != nil {
				lc.Log.Warn().Err(err).Msg("Failed to remove previous banner image")
			}
			img, err := lc.Media.Upload(ctx, reqData.Image, media.UploadOptions{Folder: bannerFolder})
			if err != nil {
				return err
			}
			banner.Image = img
		}
		banner.Title = reqData.Title
		banner.SubTitle = reqData.SubTitle
		layout.Banner = datatypes.NewJSONType(banner)
	case models.LayoutFAQ:
		layout.FAQ = reqData.FAQ
	case models.LayoutCategories:
		layout.Categories = reqData.Categories
	}
	return nil
}

// CreateLayout creates the single layout of a type.
func (lc *LayoutController) CreateLayout(c *fiber.Ctx) error {
	reqData, ok := c.Locals(layoutValidator.LayoutKey).(*layoutValidator.LayoutRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()

	var count int64
	if err := lc.DB.WithContext(ctx).Model(&models.Layout{}).Where("type = ?", reqData.Type).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("%s already exist", reqData.Type))
	}

	var layout models.Layout
	if err := lc.apply(ctx, &layout, reqData); err != nil {
		return err
	}
	if err := lc.DB.WithContext(ctx).Create(&layout).Error; err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "Layout created successfully",
	})
}

// EditLayout replaces the content of the layout with the request's type.
func (lc *LayoutController) EditLayout(c *fiber.Ctx) error {
	reqData, ok := c.Locals(layoutValidator.LayoutKey).(*layoutValidator.LayoutRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	ctx := c.UserContext()

	layout, err := lc.findByType(ctx, reqData.Type)
	if err != nil {
		return err
	}
	if err := lc.apply(ctx, layout, reqData); err != nil {
		return err
	}
	if err := lc.DB.WithContext(ctx).Save(layout).Error; err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Layout updated successfully",
	})
}

// GetLayoutByType takes the type from the path or the ?type= query.
func (lc *LayoutController) GetLayoutByType(c *fiber.Ctx) error {
	layoutType := models.LayoutType(c.Params("type", c.Query("type")))
	if !layoutType.Valid() {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid layout type")
	}

	layout, err := lc.findByType(c.UserContext(), layoutType)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"layout": layout})
}
