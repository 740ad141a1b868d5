package realtime

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/rs/zerolog/log"
)

// writeWait bounds how long one broadcast write may block on a slow client.
const writeWait = 10 * time.Second

// Conn is the subset of a websocket connection the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Hub tracks the websocket connections of this API instance and broadcasts
// payloads to all of them. Connections that fail to write are dropped.
type Hub struct {
	mu    sync.Mutex
	conns map[Conn]struct{}
}

// NewHub builds an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[Conn]struct{})}
}

// Register adds a connection to the broadcast set.
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[c] = struct{}{}
}

// Unregister removes a connection. Safe to call for connections never
// registered.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, c)
}

// Broadcast writes payload as one text message to every connection. Only the
// redis relay goroutine calls it, so writes are never concurrent; the conn
// set is snapshotted first so a slow client never holds the lock against
// Register/Unregister. Each write carries a deadline, and a failed write
// drops the client.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	targets := make([]Conn, 0, len(h.conns))
	for c := range h.conns {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, c := range targets {
		_ = c.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Debug().Err(err).Msg("dropping websocket client")
			h.Unregister(c)
			_ = c.Close()
		}
	}
}

// Count returns how many connections are registered.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}
