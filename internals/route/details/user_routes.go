package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	chatRoute "pawmart_backend/internals/features/chat/routes"
	"pawmart_backend/internals/features/chat/relay"
	communityRoute "pawmart_backend/internals/features/community/routes"
	petRoute "pawmart_backend/internals/features/pets/routes"
	userRoute "pawmart_backend/internals/features/users/routes"
	vetRoute "pawmart_backend/internals/features/vets/routes"
)

// UserGroup: endpoints behind a required JWT.
func UserGroup(api fiber.Router, db *gorm.DB) {
	userRoute.UserRoutes(api, db)
	petRoute.PetUserRoutes(api, db)
	vetRoute.VetUserRoutes(api, db)
	communityRoute.CommunityUserRoutes(api, db)
	chatRoute.ChatUserRoutes(api, db)
}

// SocketGroup: websocket upgrade endpoints.
func SocketGroup(ws fiber.Router, hub *relay.Hub) {
	chatRoute.ChatSocketRoutes(ws, hub)
}
