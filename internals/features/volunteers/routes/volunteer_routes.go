package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	volunteerController "pawmart_backend/internals/features/volunteers/controller"
	authMw "pawmart_backend/internals/middlewares/auth"
)

// VolunteerRoutes: public browsing of trainers and their slots.
func VolunteerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := volunteerController.NewVolunteerController(db)

	api.Get("/", ctrl.ListVolunteers)
	api.Get("/:id", ctrl.GetVolunteer)
}

// VolunteerAdminRoutes: trainer management.
func VolunteerAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := volunteerController.NewVolunteerController(db)
	adminOnly := authMw.OnlyRoles("Only admins may manage volunteers", "admin")

	api.Post("/", adminOnly, ctrl.CreateVolunteer)
	api.Patch("/:id", adminOnly, ctrl.UpdateVolunteer)
	api.Delete("/:id", adminOnly, ctrl.DeleteVolunteer)
	api.Post("/:id/slots", adminOnly, ctrl.AddSlot)
	api.Delete("/:id/slots/:slotId", adminOnly, ctrl.RemoveSlot)
}
