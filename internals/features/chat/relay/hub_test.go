package relay

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	mu       sync.Mutex
	received []interface{}
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.received = append(f.received, v)
	return nil
}

func (f *fakeConn) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.received)
}

func TestEmitReachesBothOrderings(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	b := &fakeConn{}

	// each side joined under its own spelling of the pair
	hub.Join("a@x.com-b@x.com", a)
	hub.Join("b@x.com-a@x.com", b)

	hub.Emit("a@x.com-b@x.com", "hello")

	assert.Equal(t, 1, a.count())
	assert.Equal(t, 1, b.count())
}

func TestEmitEchoesToSender(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	hub.Join("a@x.com-b@x.com", a)

	hub.Emit("a@x.com-b@x.com", "hello")
	assert.Equal(t, 1, a.count())
}

func TestEmitDoesNotCrossRooms(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	c := &fakeConn{}
	hub.Join("a@x.com-b@x.com", a)
	hub.Join("c@x.com-d@x.com", c)

	hub.Emit("a@x.com-b@x.com", "hello")
	assert.Equal(t, 1, a.count())
	assert.Equal(t, 0, c.count())
}

func TestEmitDeliversOncePerConn(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	// joined under both spellings; still one delivery
	hub.Join("a@x.com-b@x.com", a)
	hub.Join("b@x.com-a@x.com", a)

	hub.Emit("a@x.com-b@x.com", "hello")
	assert.Equal(t, 1, a.count())
}

func TestLeaveRemovesEverywhere(t *testing.T) {
	hub := NewHub()
	a := &fakeConn{}
	hub.Join("a@x.com-b@x.com", a)
	hub.Join("a@x.com-c@x.com", a)

	hub.Leave(a)
	hub.Emit("a@x.com-b@x.com", "hello")
	hub.Emit("a@x.com-c@x.com", "hello")
	assert.Equal(t, 0, a.count())
}

func TestFlipRoom(t *testing.T) {
	flipped, ok := flipRoom("a@x.com-b@y.com")
	require.True(t, ok)
	assert.Equal(t, "b@y.com-a@x.com", flipped)

	// hyphenated local part stays intact
	flipped, ok = flipRoom("jean-luc@x.com-b@y.com")
	require.True(t, ok)
	assert.Equal(t, "b@y.com-jean-luc@x.com", flipped)

	_, ok = flipRoom("not-a-room")
	assert.False(t, ok)
}
