// Package notify pushes order events to the websocket clients of a session.
package notify

import (
	"encoding/json"
	"sync"
	"time"

	"go-hotel-ordering/models"
	"go-hotel-ordering/store"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const defaultWriteWait = 10 * time.Second

// client serializes writes to one connection.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub tracks open connections per session. The hub lock only guards the
// client sets; frames are written outside it, one writer per connection,
// each bounded by the write deadline.
type Hub struct {
	mu        sync.Mutex
	clients   map[string]map[*websocket.Conn]*client
	writeWait time.Duration
	logger    *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:   make(map[string]map[*websocket.Conn]*client),
		writeWait: defaultWriteWait,
		logger:    logger,
	}
}

// SetWriteWait changes how long a single frame write may block before the
// client is dropped.
func (h *Hub) SetWriteWait(d time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.writeWait = d
}

func (h *Hub) Register(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.clients[sessionID]
	if !ok {
		conns = make(map[*websocket.Conn]*client)
		h.clients[sessionID] = conns
	}
	conns[conn] = &client{conn: conn}
}

func (h *Hub) Unregister(sessionID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(sessionID, conn)
}

func (h *Hub) Count(sessionID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[sessionID])
}

// Publish adapts a store event into a broadcast for its session.
func (h *Hub) Publish(sessionID string, e store.Event) {
	h.Broadcast(sessionID, models.Notification{Event: e.Type, Payload: e.Order})
}

// Broadcast writes msg to every client of the session, dropping clients whose
// write fails or times out.
func (h *Hub) Broadcast(sessionID string, msg models.Notification) {
	messageBytes, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("marshal notification", zap.String("event", msg.Event), zap.Error(err))
		return
	}

	clients, writeWait := h.snapshot(sessionID)
	for _, cl := range clients {
		if err := cl.write(messageBytes, writeWait); err != nil {
			h.logger.Warn("dropping websocket client",
				zap.String("session_id", sessionID),
				zap.Error(err))
			cl.conn.Close()
			h.Unregister(sessionID, cl.conn)
		}
	}
}

// CloseSession disconnects every client of an ended session.
func (h *Hub) CloseSession(sessionID string) {
	h.mu.Lock()
	conns := h.clients[sessionID]
	delete(h.clients, sessionID)
	writeWait := h.writeWait
	h.mu.Unlock()

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended")
	for conn := range conns {
		_ = conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(writeWait))
		conn.Close()
	}
}

func (h *Hub) snapshot(sessionID string) ([]*client, time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns := h.clients[sessionID]
	out := make([]*client, 0, len(conns))
	for _, cl := range conns {
		out = append(out, cl)
	}
	return out, h.writeWait
}

func (h *Hub) remove(sessionID string, conn *websocket.Conn) {
	conns := h.clients[sessionID]
	delete(conns, conn)
	if len(conns) == 0 {
		delete(h.clients, sessionID)
	}
}

func (c *client) write(data []byte, writeWait time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.TextMessage, data)
}
