package relay

import (
	"strings"
	"sync"
)

// Conn is the slice of the websocket connection the hub needs. The
// gofiber/websocket conn satisfies it directly.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Hub tracks which connections joined which rooms. Room names come from the
// client as "<emailA>-<emailB>"; the two participants may join under either
// ordering, so deliveries go out to both spellings.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: map[string]map[Conn]struct{}{}}
}

func (h *Hub) Join(room string, c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[room]
	if !ok {
		members = map[Conn]struct{}{}
		h.rooms[room] = members
	}
	members[c] = struct{}{}
}

// Leave removes the connection from every room it joined.
func (h *Hub) Leave(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for room, members := range h.rooms {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

// Emit sends the payload to every member of the room under both orderings
// of the participant pair. The sender's own connection receives it too,
// which the client uses as the delivery echo.
func (h *Hub) Emit(room string, payload interface{}) {
	targets := map[Conn]struct{}{}

	h.mu.RLock()
	for c := range h.rooms[room] {
		targets[c] = struct{}{}
	}
	if flipped, ok := flipRoom(room); ok {
		for c := range h.rooms[flipped] {
			targets[c] = struct{}{}
		}
	}
	h.mu.RUnlock()

	for c := range targets {
		// write errors surface on the reader side of that conn
		_ = c.WriteJSON(payload)
	}
}

// RoomCount reports the member count across both orderings of the name.
func (h *Hub) RoomCount(room string) int {
	targets := map[Conn]struct{}{}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		targets[c] = struct{}{}
	}
	if flipped, ok := flipRoom(room); ok {
		for c := range h.rooms[flipped] {
			targets[c] = struct{}{}
		}
	}
	return len(targets)
}

// flipRoom swaps "<a>-<b>" to "<b>-<a>". Split point is the first "-"
// after an "@", so hyphenated local parts stay intact.
func flipRoom(room string) (string, bool) {
	at := strings.Index(room, "@")
	if at < 0 {
		return "", false
	}
	i := strings.Index(room[at:], "-")
	if i < 0 {
		return "", false
	}
	i += at
	if i <= 0 || i >= len(room)-1 {
		return "", false
	}
	return room[i+1:] + "-" + room[:i], true
}
