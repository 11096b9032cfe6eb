package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/users/dto"
	"pawmart_backend/internals/features/users/model"
	helper "pawmart_backend/internals/helpers"
)

type UserController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validate: validator.New()}
}

// GET /api/u/users/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID := helper.GetUserUUID(c)
	var user model.User
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonOK(c, "", dto.NewUserResponse(&user))
}

// PATCH /api/u/users/me
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	userID := helper.GetUserUUID(c)
	var user model.User
	if err := ctrl.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	updates := map[string]any{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.PhotoURL != nil {
		updates["user_photo_url"] = body.PhotoURL
	}
	if body.Phone != nil {
		updates["user_phone"] = body.Phone
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&user).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update profile")
		}
	}
	return helper.JsonUpdated(c, "", dto.NewUserResponse(&user))
}

// GET /api/a/users
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	q := ctrl.DB.Model(&model.User{})
	if search := c.Query("q"); search != "" {
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count users")
	}

	var users []model.User
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list users")
	}

	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.NewUserResponse(&users[i]))
	}
	return helper.JsonList(c, "", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/a/users/:id/role
func (ctrl *UserController) ChangeRole(c *fiber.Ctx) error {
	var body dto.ChangeRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	res := ctrl.DB.Model(&model.User{}).Where("user_id = ?", c.Params("id")).Update("user_role", body.Role)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonUpdated(c, "role updated", fiber.Map{"role": body.Role})
}

// DELETE /api/a/users/:id — soft delete + deactivate
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	var user model.User
	if err := ctrl.DB.Where("user_id = ?", c.Params("id")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load account")
	}
	if err := ctrl.DB.Model(&user).Update("user_is_active", false).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not deactivate account")
	}
	if err := ctrl.DB.Delete(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete account")
	}
	return helper.JsonDeleted(c, "account removed", nil)
}
