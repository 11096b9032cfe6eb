package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/vets/dto"
	"pawmart_backend/internals/features/vets/model"
	helper "pawmart_backend/internals/helpers"
)

type VetController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVetController(db *gorm.DB) *VetController {
	return &VetController{DB: db, Validate: validator.New()}
}

// GET /api/public/vets — ?specialty= filter, inactive vets hidden
func (ctrl *VetController) ListVets(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Vet{}).Where("vet_is_active = ?", true)
	if specialty := c.Query("specialty"); specialty != "" {
		q = q.Where("? = ANY(vet_specialties)", specialty)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count vets")
	}
	var vets []model.Vet
	if err := q.Order("vet_name ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&vets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list vets")
	}
	return helper.JsonList(c, "", vets, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/vets/:id
func (ctrl *VetController) GetVet(c *fiber.Ctx) error {
	var vet model.Vet
	if err := ctrl.DB.Where("vet_id = ?", c.Params("id")).First(&vet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vet not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load vet")
	}
	return helper.JsonOK(c, "", vet)
}

// POST /api/a/vets
func (ctrl *VetController) CreateVet(c *fiber.Ctx) error {
	var body dto.CreateVetRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	if body.Fee.IsNegative() {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Fee cannot be negative")
	}

	vet := model.Vet{
		VetName:        body.Name,
		VetEmail:       body.Email,
		VetPhone:       body.Phone,
		VetClinicName:  body.ClinicName,
		VetLocation:    body.Location,
		VetSpecialties: body.Specialties,
		VetFee:         body.Fee,
		VetImageURL:    body.ImageURL,
		VetIsActive:    true,
	}
	if err := ctrl.DB.Create(&vet).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "A vet with this email already exists")
		}
		log.Println("[ERROR] create vet:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create vet")
	}
	return helper.JsonCreated(c, "", vet)
}

// PATCH /api/a/vets/:id
func (ctrl *VetController) UpdateVet(c *fiber.Ctx) error {
	var body dto.UpdateVetRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var vet model.Vet
	if err := ctrl.DB.Where("vet_id = ?", c.Params("id")).First(&vet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vet not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load vet")
	}

	updates := map[string]any{}
	if body.Name != nil {
		updates["vet_name"] = *body.Name
	}
	if body.Phone != nil {
		updates["vet_phone"] = body.Phone
	}
	if body.ClinicName != nil {
		updates["vet_clinic_name"] = body.ClinicName
	}
	if body.Location != nil {
		updates["vet_location"] = body.Location
	}
	if body.Specialties != nil {
		updates["vet_specialties"] = pq.StringArray(body.Specialties)
	}
	if body.Fee != nil {
		if body.Fee.IsNegative() {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Fee cannot be negative")
		}
		updates["vet_fee"] = *body.Fee
	}
	if body.ImageURL != nil {
		updates["vet_image_url"] = body.ImageURL
	}
	if body.IsActive != nil {
		updates["vet_is_active"] = *body.IsActive
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&vet).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update vet")
		}
	}
	return helper.JsonUpdated(c, "", vet)
}

// DELETE /api/a/vets/:id — soft delete, appointments keep their denormalized
// vet name
func (ctrl *VetController) DeleteVet(c *fiber.Ctx) error {
	res := ctrl.DB.Where("vet_id = ?", c.Params("id")).Delete(&model.Vet{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete vet")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Vet not found")
	}
	return helper.JsonDeleted(c, "", nil)
}
