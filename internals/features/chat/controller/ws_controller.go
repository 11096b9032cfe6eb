package controller

import (
	"time"

	"github.com/gofiber/websocket/v2"

	"pawmart_backend/internals/features/chat/relay"
)

// Inbound event frames. A frame carries its event name plus the fields that
// event needs; unknown events are dropped.
type wsFrame struct {
	Event string `json:"event"`

	Room string `json:"room,omitempty"`

	// send_message
	Sender  string `json:"sender,omitempty"`
	Message string `json:"message,omitempty"`

	// send_location
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type wsOutbound struct {
	Event     string  `json:"event"`
	Room      string  `json:"room"`
	Sender    string  `json:"sender"`
	Message   string  `json:"message,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	SentAt    string  `json:"sent_at"`
}

// ChatSocketController only rebroadcasts frames. History never passes
// through here: the client persists what it sends via the REST chat
// endpoints right after emitting.
type ChatSocketController struct {
	Hub *relay.Hub
}

func NewChatSocketController(hub *relay.Hub) *ChatSocketController {
	return &ChatSocketController{Hub: hub}
}

// Handle runs the read loop for one websocket connection until it closes.
func (ctrl *ChatSocketController) Handle(c *websocket.Conn) {
	defer func() {
		ctrl.Hub.Leave(c)
		_ = c.Close()
	}()

	for {
		var frame wsFrame
		if err := c.ReadJSON(&frame); err != nil {
			return
		}

		switch frame.Event {
		case "join_room":
			if frame.Room == "" {
				continue
			}
			ctrl.Hub.Join(frame.Room, c)

		case "send_message":
			if frame.Room == "" || frame.Sender == "" || frame.Message == "" {
				continue
			}
			ctrl.Hub.Emit(frame.Room, wsOutbound{
				Event:   "receive_message",
				Room:    frame.Room,
				Sender:  frame.Sender,
				Message: frame.Message,
				SentAt:  time.Now().UTC().Format(time.RFC3339),
			})

		case "send_location":
			if frame.Room == "" || frame.Sender == "" {
				continue
			}
			ctrl.Hub.Emit(frame.Room, wsOutbound{
				Event:     "receive_location",
				Room:      frame.Room,
				Sender:    frame.Sender,
				Latitude:  frame.Latitude,
				Longitude: frame.Longitude,
				SentAt:    time.Now().UTC().Format(time.RFC3339),
			})
		}
	}
}
