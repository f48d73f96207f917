package controllers

import (
	"errors"
	"net/http"
	"time"

	"go-hotel-ordering/middleware"
	"go-hotel-ordering/notify"
	"go-hotel-ordering/session"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var errSessionEnded = errors.New("session ended")

// HandleWebSocket subscribes the connection to its session's order events.
// The server pings every pingInterval; each pong or incoming frame counts as
// session activity, so a client that only listens keeps its session alive.
func HandleWebSocket(hub *notify.Hub, registry *session.Registry, pingInterval time.Duration, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.SessionID(c)
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.String("session_id", sessionID), zap.Error(err))
			return
		}
		defer conn.Close()

		touch := func() error {
			if _, ok := registry.Get(sessionID); !ok {
				return errSessionEnded
			}
			return nil
		}
		conn.SetPongHandler(func(string) error { return touch() })

		done := make(chan struct{})
		defer close(done)
		go func() {
			ticker := time.NewTicker(pingInterval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingInterval)); err != nil {
						return
					}
				}
			}
		}()

		hub.Register(sessionID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				hub.Unregister(sessionID, conn)
				return
			}
			if err := touch(); err != nil {
				hub.Unregister(sessionID, conn)
				return
			}
		}
	}
}
