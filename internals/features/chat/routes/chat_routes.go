package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"gorm.io/gorm"

	chatController "pawmart_backend/internals/features/chat/controller"
	"pawmart_backend/internals/features/chat/relay"
)

// ChatUserRoutes: REST history endpoints for logged-in users. The POSTs
// are the only write path for chat history — the socket relay never
// touches the store.
func ChatUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := chatController.NewChatHistoryController(db)

	api.Post("/chats/:peer", ctrl.PostMessage)
	api.Post("/chats/:peer/locations", ctrl.PostLocation)
	api.Get("/chats/:peer", ctrl.GetHistory)
	api.Get("/chats/:peer/locations", ctrl.GetLocations)
}

// ChatSocketRoutes: the websocket relay. The upgrade check rejects plain
// HTTP requests with 426 before the handler runs.
func ChatSocketRoutes(ws fiber.Router, hub *relay.Hub) {
	sock := chatController.NewChatSocketController(hub)

	ws.Use("/chat", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	ws.Get("/chat", websocket.New(sock.Handle))
}
