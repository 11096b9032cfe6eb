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

type NewsletterController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db, Validate: validator.New()}
}

// POST /api/public/newsletter — re-subscribing is a no-op, not an error
func (ctrl *NewsletterController) Subscribe(c *fiber.Ctx) error {
	var body dto.NewsletterSubscribeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	sub := model.NewsletterSubscriber{NewsletterSubscriberEmail: body.Email}
	if err := ctrl.DB.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonOK(c, "Already subscribed", nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not subscribe")
	}
	return helper.JsonCreated(c, "Subscribed", nil)
}

// GET /api/a/newsletter
func (ctrl *NewsletterController) ListSubscribers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.NewsletterSubscriber{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count subscribers")
	}
	var subs []model.NewsletterSubscriber
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&subs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list subscribers")
	}
	return helper.JsonList(c, "", subs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
