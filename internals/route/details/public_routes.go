package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	communityRoute "pawmart_backend/internals/features/community/routes"
	petRoute "pawmart_backend/internals/features/pets/routes"
	productRoute "pawmart_backend/internals/features/products/routes"
	userRoute "pawmart_backend/internals/features/users/routes"
	vetRoute "pawmart_backend/internals/features/vets/routes"
	volunteerRoute "pawmart_backend/internals/features/volunteers/routes"
)

// AuthGroup mounts register/login under /api/auth.
func AuthGroup(app *fiber.App, db *gorm.DB) {
	userRoute.AuthRoutes(app.Group("/api/auth"), db)
}

// PublicGroup: everything browsable without a token.
func PublicGroup(api fiber.Router, db *gorm.DB) {
	petRoute.PetRoutes(api, db)
	productRoute.ProductRoutes(api.Group("/products"), db)
	volunteerRoute.VolunteerRoutes(api.Group("/volunteers"), db)
	vetRoute.VetRoutes(api, db)
	communityRoute.CommunityRoutes(api, db)
}
