package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ChatMessageID uuid.UUID `gorm:"column:chat_message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"chat_message_id"`

	ChatMessageRoom        string `gorm:"column:chat_message_room;type:varchar(250);not null;index" json:"chat_message_room"`
	ChatMessageSenderEmail string `gorm:"column:chat_message_sender_email;type:varchar(120);not null" json:"chat_message_sender_email"`
	ChatMessageBody        string `gorm:"column:chat_message_body;type:text;not null" json:"chat_message_body"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_messages" }

type LocationPing struct {
	LocationPingID uuid.UUID `gorm:"column:location_ping_id;type:uuid;default:gen_random_uuid();primaryKey" json:"location_ping_id"`

	LocationPingRoom        string  `gorm:"column:location_ping_room;type:varchar(250);not null;index" json:"location_ping_room"`
	LocationPingSenderEmail string  `gorm:"column:location_ping_sender_email;type:varchar(120);not null" json:"location_ping_sender_email"`
	LocationPingLatitude    float64 `gorm:"column:location_ping_latitude;not null" json:"location_ping_latitude"`
	LocationPingLongitude   float64 `gorm:"column:location_ping_longitude;not null" json:"location_ping_longitude"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (LocationPing) TableName() string { return "location_pings" }

// CanonicalRoom joins the two participant emails in sorted order so that
// both sides compute the same room name regardless of who opened the chat.
func CanonicalRoom(emailA, emailB string) string {
	pair := []string{emailA, emailB}
	sort.Strings(pair)
	return pair[0] + "-" + pair[1]
}
