package controller

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"pawmart_backend/internals/configs"
	"pawmart_backend/internals/features/users/dto"
	"pawmart_backend/internals/features/users/model"
	"pawmart_backend/internals/features/users/service"
	helper "pawmart_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validate: validator.New()}
}

/* ===================== Register / Login ===================== */

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not hash password")
	}

	user := model.User{
		UserName:     body.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(body.Email)),
		UserPassword: string(hash),
		UserRole:     model.UserRoleUser,
		UserPhotoURL: body.PhotoURL,
	}
	if err := ctrl.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email is already registered")
		}
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create account")
	}

	return ctrl.issueTokens(c, &user, true)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	err := ctrl.DB.Where("user_email = ?", strings.ToLower(strings.TrimSpace(body.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load account")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(body.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	return ctrl.issueTokens(c, &user, false)
}

/* ===================== Google sign-in ===================== */

// POST /api/auth/google
func (ctrl *AuthController) GoogleLogin(c *fiber.Ctx) error {
	var body dto.GoogleLoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(body.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(body.IDToken)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}

	var user model.User
	err = ctrl.DB.Where("user_google_sub = ?", claimSet.Sub).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// provision on first sign-in; also adopt an existing e-mail account
		err = ctrl.DB.Where("user_email = ?", strings.ToLower(claimSet.Email)).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sub := claimSet.Sub
			pic := claimSet.Picture
			user = model.User{
				UserName:      claimSet.Name,
				UserEmail:     strings.ToLower(claimSet.Email),
				UserRole:      model.UserRoleUser,
				UserGoogleSub: &sub,
				UserPhotoURL:  &pic,
			}
			if err := ctrl.DB.Create(&user).Error; err != nil {
				log.Println("[ERROR] google provision:", err)
				return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create account")
			}
		} else if err == nil {
			sub := claimSet.Sub
			if err := ctrl.DB.Model(&user).Update("user_google_sub", &sub).Error; err != nil {
				log.Println("[WARN] google link:", err)
			}
		} else {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load account")
		}
	} else if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load account")
	}

	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	return ctrl.issueTokens(c, &user, false)
}

/* ===================== Refresh / Logout ===================== */

// POST /api/auth/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	raw := helper.GetRefreshTokenFromCookie(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing refresh token")
	}
	userID, err := service.ParseRefreshToken(raw)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid refresh token")
	}

	var user model.User
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account not found")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Account is deactivated")
	}
	return ctrl.issueTokens(c, &user, false)
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	service.ClearAuthCookies(c)
	return helper.JsonOK(c, "logged out", nil)
}

/* ===================== Internals ===================== */

func (ctrl *AuthController) issueTokens(c *fiber.Ctx, user *model.User, created bool) error {
	access, err := service.GenerateAccessToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not sign token")
	}
	refresh, err := service.GenerateRefreshToken(user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not sign token")
	}
	service.SetAuthCookies(c, access, refresh)

	resp := dto.AuthResponse{AccessToken: access, User: dto.NewUserResponse(user)}
	if created {
		return helper.JsonCreated(c, "account created", resp)
	}
	return helper.JsonOK(c, "login ok", resp)
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
