package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	vetController "pawmart_backend/internals/features/vets/controller"
	authMw "pawmart_backend/internals/middlewares/auth"
)

// VetRoutes: public directory.
func VetRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := vetController.NewVetController(db)

	api.Get("/vets", ctrl.ListVets)
	api.Get("/vets/:id", ctrl.GetVet)
}

// VetUserRoutes: appointment booking and management.
func VetUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := vetController.NewAppointmentController(db)

	api.Post("/appointments", ctrl.CreateAppointment)
	api.Get("/appointments", ctrl.ListAppointments)
	api.Patch("/appointments/:id/status", ctrl.UpdateStatus)
}

// VetAdminRoutes: directory management.
func VetAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := vetController.NewVetController(db)
	adminOnly := authMw.OnlyRoles("Only admins may manage vets", "admin")

	api.Post("/vets", adminOnly, ctrl.CreateVet)
	api.Patch("/vets/:id", adminOnly, ctrl.UpdateVet)
	api.Delete("/vets/:id", adminOnly, ctrl.DeleteVet)
}
