package userController

import (
	"elearning/controllers"
	"elearning/media"
	"elearning/middleware"
	"elearning/models"
	userValidator "elearning/validators/userValidator"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	avatarFolder = "avatars"
	avatarWidth  = 150
)

type UserController struct {
	controllers.Deps
}

func NewUserController(deps controllers.Deps) *UserController {
	return &UserController{Deps: deps}
}

// loadUser reads the user row behind the request's session. The cached
// session copy has no password hash and must not be written back.
func (uc *UserController) loadUser(c *fiber.Ctx, id string) (*models.User, error) {
	var user models.User
	err := uc.DB.WithContext(c.UserContext()).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// saveUser persists user and refreshes its cached session.
func (uc *UserController) saveUser(c *fiber.Ctx, user *models.User) error {
	if err := uc.DB.WithContext(c.UserContext()).Save(user).Error; err != nil {
		return err
	}
	return uc.Sessions.SaveIfActive(c.UserContext(), user)
}

// GetUserInfo returns the session user.
func (uc *UserController) GetUserInfo(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"user": middleware.CurrentUser(c),
	})
}

func (uc *UserController) UpdateUserInfo(c *fiber.Ctx) error {
	reqData, ok := c.Locals(userValidator.UpdateInfoKey).(*userValidator.UpdateInfoRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}

	user, err := uc.loadUser(c, middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	user.Name = strings.TrimSpace(reqData.Name)
	if err := uc.saveUser(c, user); err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "User info updated successfully",
		"user":    user,
	})
}

func (uc *UserController) UpdatePassword(c *fiber.Ctx) error {
	reqData, ok := c.Locals(userValidator.UpdatePasswordKey).(*userValidator.UpdatePasswordRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}

	user, err := uc.loadUser(c, middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}
	// social logins have no password to change
	if user.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user")
	}
	if !user.ComparePassword(reqData.OldPassword) {
		return fiber.NewError(fiber.StatusBadRequest, "Old password is incorrect")
	}
	if err := user.SetPassword(reqData.NewPassword, uc.Cfg.SaltRound); err != nil {
		return err
	}
	if err := uc.saveUser(c, user); err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Password updated successfully",
	})
}

// UpdateAvatar replaces the user's avatar, removing the previous upload.
func (uc *UserController) UpdateAvatar(c *fiber.Ctx) error {
	reqData, ok := c.Locals(userValidator.UpdateAvatarKey).(*userValidator.UpdateAvatarRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}

	user, err := uc.loadUser(c, middleware.CurrentUser(c).ID)
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	img, err := uc.Media.Upload(ctx, reqData.Avatar, media.UploadOptions{Folder: avatarFolder, Width: avatarWidth})
	if err != nil {
		return err
	}
	// the old file goes only once the replacement is stored
	if err := uc.Media.Destroy(ctx, user.Avatar.Data().PublicID); err != nil {
		uc.Log.Warn().Err(err).Str("user", user.ID).Msg("Failed to remove previous avatar")
	}
	user.Avatar = datatypes.NewJSONType(img)

	if err := uc.saveUser(c, user); err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"user": user})
}

// GetAllUsers lists users, newest first
func (uc *UserController) GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := uc.DB.WithContext(c.UserContext()).Order("created_at DESC").Find(&users).Error; err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"users": users})
}

// UpdateUserRole changes a user's role. A live session picks up the new
// role immediately.
func (uc *UserController) UpdateUserRole(c *fiber.Ctx) error {
	reqData, ok := c.Locals(userValidator.UpdateRoleKey).(*userValidator.UpdateRoleRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}

	user, err := uc.loadUser(c, reqData.ID)
	if err != nil {
		return err
	}
	user.Role = reqData.Role
	if err := uc.saveUser(c, user); err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{"user": user})
}

// DeleteUser removes the user row and any session it holds.
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	user, err := uc.loadUser(c, c.Params("id"))
	if err != nil {
		return err
	}

	ctx := c.UserContext()
	if err := uc.DB.WithContext(ctx).Delete(user).Error; err != nil {
		return err
	}
	if err := uc.Sessions.Delete(ctx, user.ID); err != nil {
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "User deleted successfully",
	})
}
