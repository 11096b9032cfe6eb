package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	communityRoute "pawmart_backend/internals/features/community/routes"
	productRoute "pawmart_backend/internals/features/products/routes"
	userRoute "pawmart_backend/internals/features/users/routes"
	vetRoute "pawmart_backend/internals/features/vets/routes"
	volunteerRoute "pawmart_backend/internals/features/volunteers/routes"
)

// AdminGroup: operator endpoints. The group already requires the admin
// role; per-route guards inside the feature routers just repeat it.
func AdminGroup(api fiber.Router, db *gorm.DB) {
	userRoute.UserAdminRoutes(api.Group("/users"), db)
	productRoute.ProductAdminRoutes(api.Group("/products"), db)
	volunteerRoute.VolunteerAdminRoutes(api.Group("/volunteers"), db)
	vetRoute.VetAdminRoutes(api, db)
	communityRoute.CommunityAdminRoutes(api, db)
}
