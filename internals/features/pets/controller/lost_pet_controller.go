package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/pets/dto"
	"pawmart_backend/internals/features/pets/model"
	helper "pawmart_backend/internals/helpers"
)

type LostPetController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewLostPetController(db *gorm.DB) *LostPetController {
	return &LostPetController{DB: db, Validate: validator.New()}
}

// GET /api/public/lost-pets — open board, ?status= filter
func (ctrl *LostPetController) ListReports(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.LostPetReport{})
	if status := c.Query("status"); status != "" {
		q = q.Where("lost_pet_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count reports")
	}
	var reports []model.LostPetReport
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&reports).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list reports")
	}
	return helper.JsonList(c, "", reports, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/public/lost-pets — reporting does not require an account
func (ctrl *LostPetController) CreateReport(c *fiber.Ctx) error {
	var body dto.CreateLostPetReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	report := model.LostPetReport{
		LostPetName:             body.PetName,
		LostPetSpecies:          body.Species,
		LostPetDescription:      body.Description,
		LostPetImageURL:         body.ImageURL,
		LostPetLastSeenLocation: body.LastSeenLocation,
		LostPetLastSeenAt:       body.LastSeenAt,
		LostPetContactName:      body.ContactName,
		LostPetContactEmail:     body.ContactEmail,
		LostPetContactPhone:     body.ContactPhone,
		LostPetStatus:           model.LostPetStatusLost,
	}
	if err := ctrl.DB.Create(&report).Error; err != nil {
		log.Println("[ERROR] create lost-pet report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not file report")
	}
	return helper.JsonCreated(c, "", report)
}

// PATCH /api/u/lost-pets/:id/status — reporter or admin moves the report
// through lost → found → reunited
func (ctrl *LostPetController) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateLostPetStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var report model.LostPetReport
	if err := ctrl.DB.Where("lost_pet_id = ?", c.Params("id")).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load report")
	}
	if !helper.IsAdmin(c) && report.LostPetContactEmail != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the reporter may update this report")
	}

	if err := ctrl.DB.Model(&report).Update("lost_pet_status", body.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update report")
	}
	return helper.JsonUpdated(c, "", report)
}
