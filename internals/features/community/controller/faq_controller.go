package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/community/dto"
	"pawmart_backend/internals/features/community/model"
	helper "pawmart_backend/internals/helpers"
)

type FAQController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewFAQController(db *gorm.DB) *FAQController {
	return &FAQController{DB: db, Validate: validator.New()}
}

// GET /api/public/faqs
func (ctrl *FAQController) ListFAQs(c *fiber.Ctx) error {
	var faqs []model.FAQ
	if err := ctrl.DB.Order("faq_order ASC, created_at ASC").Find(&faqs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list FAQs")
	}
	return helper.JsonOK(c, "", faqs)
}

// POST /api/a/faqs
func (ctrl *FAQController) CreateFAQ(c *fiber.Ctx) error {
	var body dto.CreateFAQRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	faq := model.FAQ{
		FAQQuestion: body.Question,
		FAQAnswer:   body.Answer,
		FAQOrder:    body.Order,
	}
	if err := ctrl.DB.Create(&faq).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create FAQ")
	}
	return helper.JsonCreated(c, "", faq)
}

// PATCH /api/a/faqs/:id
func (ctrl *FAQController) UpdateFAQ(c *fiber.Ctx) error {
	var body dto.UpdateFAQRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var faq model.FAQ
	if err := ctrl.DB.Where("faq_id = ?", c.Params("id")).First(&faq).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "FAQ not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load FAQ")
	}

	updates := map[string]any{}
	if body.Question != nil {
		updates["faq_question"] = *body.Question
	}
	if body.Answer != nil {
		updates["faq_answer"] = *body.Answer
	}
	if body.Order != nil {
		updates["faq_order"] = *body.Order
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&faq).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update FAQ")
		}
	}
	return helper.JsonUpdated(c, "", faq)
}

// DELETE /api/a/faqs/:id
func (ctrl *FAQController) DeleteFAQ(c *fiber.Ctx) error {
	res := ctrl.DB.Where("faq_id = ?", c.Params("id")).Delete(&model.FAQ{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete FAQ")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "FAQ not found")
	}
	return helper.JsonDeleted(c, "", nil)
}
