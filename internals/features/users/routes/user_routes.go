package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "pawmart_backend/internals/features/users/controller"
	"pawmart_backend/internals/middlewares"
	authMw "pawmart_backend/internals/middlewares/auth"
)

// AuthRoutes: public register/login surface.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewAuthController(db)

	api.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/google", middlewares.LoginRateLimiter(), ctrl.GoogleLogin)
	api.Post("/refresh", ctrl.Refresh)
	api.Post("/logout", ctrl.Logout)
}

// UserRoutes: profile endpoints for the logged-in user.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	api.Get("/me", ctrl.GetMe)
	api.Patch("/me", ctrl.UpdateMe)
}

// UserAdminRoutes: account management for operators.
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	api.Get("/", ctrl.ListUsers)
	api.Patch("/:id/role", authMw.OnlyRoles("Only admins may change roles", "admin"), ctrl.ChangeRole)
	api.Delete("/:id", authMw.OnlyRoles("Only admins may remove accounts", "admin"), ctrl.DeleteUser)
}
