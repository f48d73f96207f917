package middleware

import (
	"net/http"

	"go-hotel-ordering/session"
	"go-hotel-ordering/store"

	"github.com/gin-gonic/gin"
)

const (
	SessionHeader = "X-Session-ID"
	SessionCookie = "session_id"

	sessionIDKey = "session_id"
	storeKey     = "store"
)

// Session attaches the caller's OrderStore to the request, starting a new
// session when the caller has none. The effective id is echoed back in the
// X-Session-ID header and the session_id cookie.
func Session(registry *session.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.GetHeader(SessionHeader)
		if requested == "" {
			requested, _ = c.Cookie(SessionCookie)
		}
		if requested == "" {
			requested = c.Query(SessionCookie)
		}

		id, st, _ := registry.Resolve(requested)
		c.Set(sessionIDKey, id)
		c.Set(storeKey, st)
		c.Header(SessionHeader, id)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, id, 0, "/", "", false, true)
		c.Next()
	}
}

func SessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}

func SessionStore(c *gin.Context) *store.OrderStore {
	return c.MustGet(storeKey).(*store.OrderStore)
}
