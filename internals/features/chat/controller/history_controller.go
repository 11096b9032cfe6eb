package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pawmart_backend/internals/features/chat/dto"
	"pawmart_backend/internals/features/chat/model"
	helper "pawmart_backend/internals/helpers"
)

type ChatHistoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewChatHistoryController(db *gorm.DB) *ChatHistoryController {
	return &ChatHistoryController{DB: db, Validate: validator.New()}
}

// POST /api/u/chats/:peer — the client persists each message it emitted
// over the socket; the relay itself never writes. The room lands in
// canonical order no matter which side saves it.
func (ctrl *ChatHistoryController) PostMessage(c *fiber.Ctx) error {
	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing account email")
	}
	peer := c.Params("peer")
	if peer == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing peer email")
	}

	var body dto.SendMessageRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	msg := model.ChatMessage{
		ChatMessageRoom:        model.CanonicalRoom(email, peer),
		ChatMessageSenderEmail: email,
		ChatMessageBody:        body.Message,
	}
	if err := ctrl.DB.Create(&msg).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save message")
	}
	return helper.JsonCreated(c, "Message saved", msg)
}

// POST /api/u/chats/:peer/locations
func (ctrl *ChatHistoryController) PostLocation(c *fiber.Ctx) error {
	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing account email")
	}
	peer := c.Params("peer")
	if peer == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing peer email")
	}

	var body dto.ShareLocationRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctrl.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	ping := model.LocationPing{
		LocationPingRoom:        model.CanonicalRoom(email, peer),
		LocationPingSenderEmail: email,
		LocationPingLatitude:    body.Latitude,
		LocationPingLongitude:   body.Longitude,
	}
	if err := ctrl.DB.Create(&ping).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not save location")
	}
	return helper.JsonCreated(c, "Location saved", ping)
}

// GET /api/u/chats/:peer — history between the caller and the peer email
func (ctrl *ChatHistoryController) GetHistory(c *fiber.Ctx) error {
	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing account email")
	}
	peer := c.Params("peer")
	if peer == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing peer email")
	}

	room := model.CanonicalRoom(email, peer)
	paging := helper.ResolvePaging(c, 50, 200)

	q := ctrl.DB.Model(&model.ChatMessage{}).Where("chat_message_room = ?", room)
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not count messages")
	}
	var msgs []model.ChatMessage
	if err := q.Order("created_at ASC").Limit(paging.Limit).Offset(paging.Offset).Find(&msgs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load history")
	}
	return helper.JsonList(c, "", msgs, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/u/chats/:peer/locations — last shared positions for the pair
func (ctrl *ChatHistoryController) GetLocations(c *fiber.Ctx) error {
	email := helper.GetUserEmail(c)
	if email == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Missing account email")
	}
	peer := c.Params("peer")
	if peer == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing peer email")
	}

	room := model.CanonicalRoom(email, peer)
	var pings []model.LocationPing
	if err := ctrl.DB.
		Where("location_ping_room = ?", room).
		Order("created_at DESC").Limit(20).
		Find(&pings).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Could not load locations")
	}
	return helper.JsonOK(c, "", pings)
}
