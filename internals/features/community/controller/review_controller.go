package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/community/dto"
	"pawmart_backend/internals/features/community/model"
	helper "pawmart_backend/internals/helpers"
)

type ReviewController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db, Validate: validator.New()}
}

// GET /api/public/reviews
func (ctrl *ReviewController) ListReviews(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Review{})
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count reviews")
	}
	var reviews []model.Review
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&reviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list reviews")
	}
	return helper.JsonList(c, "", reviews, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/u/reviews
func (ctrl *ReviewController) CreateReview(c *fiber.Ctx) error {
	var body dto.CreateReviewRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing account email")
	}
	name := helper.GetUserName(c)
	if name == "" {
		name = email
	}

	review := model.Review{
		ReviewAuthorEmail: email,
		ReviewAuthorName:  name,
		ReviewRating:      body.Rating,
		ReviewBody:        body.Body,
	}
	if err := ctrl.DB.Create(&review).Error; err != nil {
		log.Println("[ERROR] create review:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create review")
	}
	return helper.JsonCreated(c, "", review)
}

// DELETE /api/u/reviews/:id — author or admin
func (ctrl *ReviewController) DeleteReview(c *fiber.Ctx) error {
	var review model.Review
	if err := ctrl.DB.Where("review_id = ?", c.Params("id")).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Review not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load review")
	}
	if !helper.IsAdmin(c) && review.ReviewAuthorEmail != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the author may remove this review")
	}
	if err := ctrl.DB.Delete(&review).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete review")
	}
	return helper.JsonDeleted(c, "", nil)
}
