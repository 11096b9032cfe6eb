package dto

// SendMessageRequest — POST /api/u/chats/:peer. The client calls this
// right after emitting the same message over the socket.
type SendMessageRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

// ShareLocationRequest — POST /api/u/chats/:peer/locations
type ShareLocationRequest struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}
