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

type PetController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPetController(db *gorm.DB) *PetController {
	return &PetController{DB: db, Validate: validator.New()}
}

// GET /api/public/pets — ?species= & ?status= filters
func (ctrl *PetController) ListPets(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Pet{})
	if species := c.Query("species"); species != "" {
		q = q.Where("pet_species = ?", species)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("pet_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count pets")
	}
	var pets []model.Pet
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&pets).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list pets")
	}
	return helper.JsonList(c, "", pets, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/pets/:id
func (ctrl *PetController) GetPet(c *fiber.Ctx) error {
	var pet model.Pet
	if err := ctrl.DB.Where("pet_id = ?", c.Params("id")).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pet not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load pet")
	}
	return helper.JsonOK(c, "", pet)
}

// POST /api/u/pets — the lister is the logged-in user
func (ctrl *PetController) CreatePet(c *fiber.Ctx) error {
	var body dto.CreatePetRequest
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

	pet := model.Pet{
		PetName:        body.PetName,
		PetSpecies:     body.Species,
		PetBreed:       body.Breed,
		PetAgeMonths:   body.AgeMonths,
		PetDescription: body.Description,
		PetImageURL:    body.ImageURL,
		PetListerEmail: email,
		PetStatus:      model.PetStatusAvailable,
	}
	if err := ctrl.DB.Create(&pet).Error; err != nil {
		log.Println("[ERROR] create pet:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create pet listing")
	}
	return helper.JsonCreated(c, "", pet)
}

// PATCH /api/u/pets/:id — only the lister or an admin; adopted pets are
// frozen
func (ctrl *PetController) UpdatePet(c *fiber.Ctx) error {
	var body dto.UpdatePetRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var pet model.Pet
	if err := ctrl.DB.Where("pet_id = ?", c.Params("id")).First(&pet).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pet not found")
	}
	if !helper.IsAdmin(c) && pet.PetListerEmail != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the lister may edit this pet")
	}
	if pet.PetStatus == model.PetStatusAdopted {
		return helper.JsonError(c, fiber.StatusConflict, "Adopted pets cannot be edited")
	}

	updates := map[string]any{}
	if body.PetName != nil {
		updates["pet_name"] = *body.PetName
	}
	if body.Breed != nil {
		updates["pet_breed"] = body.Breed
	}
	if body.AgeMonths != nil {
		updates["pet_age_months"] = body.AgeMonths
	}
	if body.Description != nil {
		updates["pet_description"] = body.Description
	}
	if body.ImageURL != nil {
		updates["pet_image_url"] = body.ImageURL
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&pet).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update pet")
		}
	}
	return helper.JsonUpdated(c, "", pet)
}

// DELETE /api/u/pets/:id
func (ctrl *PetController) DeletePet(c *fiber.Ctx) error {
	var pet model.Pet
	if err := ctrl.DB.Where("pet_id = ?", c.Params("id")).First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pet not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load pet")
	}
	if !helper.IsAdmin(c) && pet.PetListerEmail != helper.GetUserEmail(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Only the lister may remove this pet")
	}
	if pet.PetStatus == model.PetStatusAdopted {
		return helper.JsonError(c, fiber.StatusConflict, "Adopted pets cannot be removed")
	}
	if err := ctrl.DB.Delete(&pet).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete pet")
	}
	return helper.JsonDeleted(c, "", nil)
}
