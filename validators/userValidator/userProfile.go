package userValidator

import (
	"elearning/models"
	"elearning/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	UpdateInfoKey     = "validatedUserInfo"
	UpdatePasswordKey = "validatedPassword"
	UpdateAvatarKey   = "validatedAvatar"
	UpdateRoleKey     = "validatedRole"
)

type UpdateInfoRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" validate:"required"`
}

type UpdateRoleRequest struct {
	ID   string      `json:"id" validate:"required,uuid"`
	Role models.Role `json:"role" validate:"required,oneof=user admin"`
}

func UpdateInfo() fiber.Handler {
	return validators.Body[UpdateInfoRequest](UpdateInfoKey)
}

func UpdatePassword() fiber.Handler {
	return validators.Body[UpdatePasswordRequest](UpdatePasswordKey)
}

func UpdateAvatar() fiber.Handler {
	return validators.Body[UpdateAvatarRequest](UpdateAvatarKey)
}

// UpdateRole validates the admin role change request
func UpdateRole() fiber.Handler {
	return validators.Body[UpdateRoleRequest](UpdateRoleKey)
}
