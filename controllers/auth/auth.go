package authController

import (
	"elearning/controllers"
	"elearning/mailer"
	"elearning/middleware"
	"elearning/models"
	"elearning/session"
	"elearning/utils"
	authValidator "elearning/validators/auth"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthController struct {
	controllers.Deps
}

func NewAuthController(deps controllers.Deps) *AuthController {
	return &AuthController{Deps: deps}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (ac *AuthController) emailExists(c *fiber.Ctx, email string) (bool, error) {
	var count int64
	err := ac.DB.WithContext(c.UserContext()).Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Register mails an activation code. No user row exists until Activate.
func (ac *AuthController) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.RegisterKey).(*authValidator.RegisterRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	email := normalizeEmail(reqData.Email)

	// Check if email already exists
	exists, err := ac.emailExists(c, email)
	if err != nil {
		return err
	}
	if exists {
		return fiber.NewError(fiber.StatusBadRequest, "Email already exists")
	}

	hash, err := models.HashPassword(reqData.Password, ac.Cfg.SaltRound)
	if err != nil {
		return err
	}

	token, code, err := ac.Sessions.CreateActivationToken(session.Registration{
		Name:     strings.TrimSpace(reqData.Name),
		Email:    email,
		Password: hash,
	})
	if err != nil {
		return err
	}

	data := mailer.ActivationData{ActivationCode: code}
	data.User.Name = strings.TrimSpace(reqData.Name)
	err = ac.Mailer.Send(c.UserContext(), mailer.Message{
		To:       email,
		Subject:  "Activate your account",
		Template: mailer.TemplateActivation,
		Data:     data,
	})
	if err != nil {
		ac.Log.Error().Err(err).Str("email", email).Msg("Failed to send activation email")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to send activation email")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message":         fmt.Sprintf("Please check your email: %s to activate your account!", email),
		"activationToken": token,
	})
}

// Activate creates the user carried by a valid activation token.
func (ac *AuthController) Activate(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.ActivateKey).(*authValidator.ActivateRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}

	claims, err := ac.Sessions.ParseActivationToken(reqData.ActivationToken)
	if err != nil {
		return err
	}
	if claims.ActivationCode != strings.TrimSpace(reqData.ActivationCode) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid activation code")
	}

	exists, err := ac.emailExists(c, claims.User.Email)
	if err != nil {
		return err
	}
	if exists {
		return fiber.NewError(fiber.StatusBadRequest, "Email already exists")
	}

	user := models.User{
		Name:       claims.User.Name,
		Email:      claims.User.Email,
		Password:   claims.User.Password,
		Role:       models.RoleUser,
		IsVerified: true,
		Courses:    datatypes.JSONSlice[models.CourseRef]{},
	}
	if err := ac.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &utils.DuplicateKeyError{Field: "email"}
		}
		return err
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.LoginKey).(*authValidator.LoginRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}

	var user models.User
	err := ac.DB.WithContext(c.UserContext()).Where("email = ?", normalizeEmail(reqData.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return err
	}
	if !user.ComparePassword(reqData.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ac.sendToken(c, &user)
}

func (ac *AuthController) sendToken(c *fiber.Ctx, user *models.User) error {
	accessToken, err := ac.Sessions.Issue(c, user)
	if err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"user":        user,
		"accessToken": accessToken,
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := ac.Sessions.Destroy(c, user.ID); err != nil {
		return err
	}
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Logout successfully",
	})
}

// RefreshToken re-issues both tokens from the refresh cookie.
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	user, accessToken, refreshToken, err := ac.Sessions.Refresh(c)
	if err != nil {
		return err
	}
	middleware.SetCurrentUser(c, user)
	return middleware.JsonResponse(c, fiber.StatusOK, fiber.Map{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}

// SocialAuth logs in the user with email, creating the account on first use.
func (ac *AuthController) SocialAuth(c *fiber.Ctx) error {
	reqData, ok := c.Locals(authValidator.SocialAuthKey).(*authValidator.SocialAuthRequest)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body!")
	}
	email := normalizeEmail(reqData.Email)
	db := ac.DB.WithContext(c.UserContext())

	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			Name:       strings.TrimSpace(reqData.Name),
			Email:      email,
			Role:       models.RoleUser,
			Avatar:     datatypes.NewJSONType(models.Image{URL: reqData.Avatar}),
			IsVerified: true,
			Courses:    datatypes.JSONSlice[models.CourseRef]{},
		}
		err = db.Create(&user).Error
	}
	if err != nil {
		return err
	}

	return ac.sendToken(c, &user)
}
