package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pawmart_backend/internals/features/volunteers/dto"
	"pawmart_backend/internals/features/volunteers/model"
	helper "pawmart_backend/internals/helpers"
)

type VolunteerController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewVolunteerController(db *gorm.DB) *VolunteerController {
	return &VolunteerController{DB: db, Validate: validator.New()}
}

/* ===================== CRUD ===================== */

// GET /api/public/volunteers
func (ctrl *VolunteerController) ListVolunteers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Volunteer{})
	if expertise := c.Query("expertise"); expertise != "" {
		q = q.Where("volunteer_expertise ILIKE ?", "%"+expertise+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count volunteers")
	}
	var rows []model.Volunteer
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list volunteers")
	}
	return helper.JsonList(c, "", rows, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/public/volunteers/:id
func (ctrl *VolunteerController) GetVolunteer(c *fiber.Ctx) error {
	var vol model.Volunteer
	if err := ctrl.DB.Where("volunteer_id = ?", c.Params("id")).First(&vol).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load volunteer")
	}
	return helper.JsonOK(c, "", vol)
}

// POST /api/a/volunteers
func (ctrl *VolunteerController) CreateVolunteer(c *fiber.Ctx) error {
	var body dto.CreateVolunteerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	rate := decimal.Zero
	if body.Rate != nil {
		rate = *body.Rate
	}
	vol := model.Volunteer{
		VolunteerName:      body.VolunteerName,
		VolunteerEmail:     body.Email,
		VolunteerExpertise: body.Expertise,
		VolunteerBio:       body.Bio,
		VolunteerImageURL:  body.ImageURL,
		VolunteerRate:      rate,
	}
	if err := ctrl.DB.Create(&vol).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "A volunteer with that email already exists")
		}
		log.Println("[ERROR] create volunteer:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create volunteer")
	}
	return helper.JsonCreated(c, "", vol)
}

// PATCH /api/a/volunteers/:id
func (ctrl *VolunteerController) UpdateVolunteer(c *fiber.Ctx) error {
	var body dto.UpdateVolunteerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var vol model.Volunteer
	if err := ctrl.DB.Where("volunteer_id = ?", c.Params("id")).First(&vol).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
	}

	updates := map[string]any{}
	if body.VolunteerName != nil {
		updates["volunteer_name"] = *body.VolunteerName
	}
	if body.Expertise != nil {
		updates["volunteer_expertise"] = body.Expertise
	}
	if body.Bio != nil {
		updates["volunteer_bio"] = body.Bio
	}
	if body.ImageURL != nil {
		updates["volunteer_image_url"] = body.ImageURL
	}
	if body.Rate != nil {
		updates["volunteer_rate"] = *body.Rate
	}
	if len(updates) > 0 {
		if err := ctrl.DB.Model(&vol).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update volunteer")
		}
	}
	return helper.JsonUpdated(c, "", vol)
}

// DELETE /api/a/volunteers/:id
func (ctrl *VolunteerController) DeleteVolunteer(c *fiber.Ctx) error {
	res := ctrl.DB.Where("volunteer_id = ?", c.Params("id")).Delete(&model.Volunteer{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not delete volunteer")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Volunteer not found")
	}
	return helper.JsonDeleted(c, "", nil)
}

/* ===================== Slots ===================== */

// POST /api/a/volunteers/:id/slots
func (ctrl *VolunteerController) AddSlot(c *fiber.Ctx) error {
	var body dto.AddSlotRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	return ctrl.withSlots(c, func(days []model.AvailableDay) ([]model.AvailableDay, error) {
		return append(days, model.AvailableDay{
			SlotID: uuid.NewString(),
			Day:    body.Day,
			Time:   body.Time,
		}), nil
	})
}

// DELETE /api/a/volunteers/:id/slots/:slotId — booked slots stay put
func (ctrl *VolunteerController) RemoveSlot(c *fiber.Ctx) error {
	slotID := c.Params("slotId")
	return ctrl.withSlots(c, func(days []model.AvailableDay) ([]model.AvailableDay, error) {
		out := days[:0]
		removed := false
		for _, d := range days {
			if d.SlotID == slotID {
				if d.IsBooked {
					return nil, errors.New("slot is booked and cannot be removed")
				}
				removed = true
				continue
			}
			out = append(out, d)
		}
		if !removed {
			return nil, gorm.ErrRecordNotFound
		}
		return out, nil
	})
}

// withSlots loads the volunteer FOR UPDATE, rewrites the slot array and
// saves it — same locking discipline the payment side uses.
func (ctrl *VolunteerController) withSlots(c *fiber.Ctx, mutate func([]model.AvailableDay) ([]model.AvailableDay, error)) error {
	var vol model.Volunteer
	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("volunteer_id = ?", c.Params("id")).First(&vol).Error; err != nil {
			return err
		}
		days, err := model.DecodeAvailableDays(vol.VolunteerAvailableDays)
		if err != nil {
			return err
		}
		days, err = mutate(days)
		if err != nil {
			return err
		}
		raw, err := model.EncodeAvailableDays(days)
		if err != nil {
			return err
		}
		vol.VolunteerAvailableDays = raw
		return tx.Model(&vol).UpdateColumn("volunteer_available_days", []byte(raw)).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Volunteer or slot not found")
		}
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	}
	return helper.JsonUpdated(c, "", vol)
}
