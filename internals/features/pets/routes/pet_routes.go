package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	petController "pawmart_backend/internals/features/pets/controller"
)

// PetRoutes: public adoption listings + open lost-pet board.
func PetRoutes(api fiber.Router, db *gorm.DB) {
	petCtrl := petController.NewPetController(db)
	lostCtrl := petController.NewLostPetController(db)

	api.Get("/pets", petCtrl.ListPets)
	api.Get("/pets/:id", petCtrl.GetPet)

	api.Get("/lost-pets", lostCtrl.ListReports)
	api.Post("/lost-pets", lostCtrl.CreateReport)
}

// PetUserRoutes: listing management for logged-in users.
func PetUserRoutes(api fiber.Router, db *gorm.DB) {
	petCtrl := petController.NewPetController(db)
	lostCtrl := petController.NewLostPetController(db)

	api.Post("/pets", petCtrl.CreatePet)
	api.Patch("/pets/:id", petCtrl.UpdatePet)
	api.Delete("/pets/:id", petCtrl.DeletePet)

	api.Patch("/lost-pets/:id/status", lostCtrl.UpdateStatus)
}
