package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/vets/dto"
	"pawmart_backend/internals/features/vets/model"
	helper "pawmart_backend/internals/helpers"
)

type AppointmentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db, Validate: validator.New()}
}

// POST /api/u/appointments — the same vet cannot hold two live bookings at
// the same instant
func (ctrl *AppointmentController) CreateAppointment(c *fiber.Ctx) error {
	var body dto.CreateAppointmentRequest
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

	vetID, err := uuid.Parse(body.VetID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid vet id")
	}

	var vet model.Vet
	if err := ctrl.DB.Where("vet_id = ? AND vet_is_active = ?", vetID, true).First(&vet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Vet not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load vet")
	}

	appt := model.Appointment{
		AppointmentVetID:      vet.VetID,
		AppointmentVetName:    vet.VetName,
		AppointmentOwnerEmail: email,
		AppointmentOwnerName:  name,
		AppointmentPetName:    body.PetName,
		AppointmentReason:     body.Reason,
		AppointmentAt:         body.At.UTC(),
		AppointmentStatus:     model.AppointmentStatusPending,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var clash int64
		if err := tx.Model(&model.Appointment{}).
			Where("appointment_vet_id = ? AND appointment_at = ? AND appointment_status <> ?",
				vet.VetID, appt.AppointmentAt, model.AppointmentStatusCancelled).
			Count(&clash).Error; err != nil {
			return err
		}
		if clash > 0 {
			return errSlotTaken
		}
		return tx.Create(&appt).Error
	})
	if err != nil {
		if errors.Is(err, errSlotTaken) {
			return helper.JsonError(c, fiber.StatusConflict, "This slot is already booked")
		}
		log.Println("[ERROR] create appointment:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not create appointment")
	}
	return helper.JsonCreated(c, "", appt)
}

var errSlotTaken = errors.New("appointment slot taken")

// GET /api/u/appointments — own bookings only; admins see everything
func (ctrl *AppointmentController) ListAppointments(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.Appointment{})
	if !helper.IsAdmin(c) {
		q = q.Where("appointment_owner_email = ?", helper.GetUserEmail(c))
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("appointment_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count appointments")
	}
	var appts []model.Appointment
	if err := q.Order("appointment_at ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&appts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not list appointments")
	}
	return helper.JsonList(c, "", appts, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// PATCH /api/u/appointments/:id/status — owners may only cancel; any
// transition is open to admins
func (ctrl *AppointmentController) UpdateStatus(c *fiber.Ctx) error {
	var body dto.UpdateAppointmentStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var appt model.Appointment
	if err := ctrl.DB.Where("appointment_id = ?", c.Params("id")).First(&appt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Appointment not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load appointment")
	}

	if !helper.IsAdmin(c) {
		if appt.AppointmentOwnerEmail != helper.GetUserEmail(c) {
			return helper.JsonError(c, fiber.StatusForbidden, "Not your appointment")
		}
		if body.Status != model.AppointmentStatusCancelled {
			return helper.JsonError(c, fiber.StatusForbidden, "Owners may only cancel")
		}
	}

	if err := ctrl.DB.Model(&appt).Update("appointment_status", body.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not update appointment")
	}
	return helper.JsonUpdated(c, "", appt)
}
