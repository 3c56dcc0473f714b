package authValidator

import (
	"elearning/validators"

	"github.com/gofiber/fiber/v2"
)

const (
	RegisterKey   = "validatedRegistration"
	ActivateKey   = "validatedActivation"
	LoginKey      = "validatedLogin"
	SocialAuthKey = "validatedSocialAuth"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ActivateRequest struct {
	ActivationToken string `json:"activation_token" validate:"required"`
	ActivationCode  string `json:"activation_code" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SocialAuthRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Avatar string `json:"avatar"`
}

// Register validator middleware
func Register() fiber.Handler {
	return validators.Body[RegisterRequest](RegisterKey)
}

func Activate() fiber.Handler {
	return validators.Body[ActivateRequest](ActivateKey)
}

// Login validator middleware
func Login() fiber.Handler {
	return validators.Body[LoginRequest](LoginKey)
}

func SocialAuth() fiber.Handler {
	return validators.Body[SocialAuthRequest](SocialAuthKey)
}
