package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	productController "pawmart_backend/internals/features/products/controller"
	authMw "pawmart_backend/internals/middlewares/auth"
)

// ProductRoutes: public storefront.
func ProductRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := productController.NewProductController(db)

	api.Get("/", ctrl.ListProducts)
	api.Get("/:id", ctrl.GetProduct)
}

// ProductAdminRoutes: catalog management.
func ProductAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := productController.NewProductController(db)
	adminOnly := authMw.OnlyRoles("Only admins may manage products", "admin")

	api.Post("/", adminOnly, ctrl.CreateProduct)
	api.Patch("/:id", adminOnly, ctrl.UpdateProduct)
	api.Delete("/:id", adminOnly, ctrl.DeleteProduct)
}
