package middleware

import (
	"shop-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionCookie имя куки с идентификатором корзинной сессии.
	SessionCookie = "shop_session"

	CtxSessionID = "session_id"
)

// SessionCart выдаёт анонимный идентификатор сессии через куку и кладёт его
// в контекст запроса. Сама корзина живёт в Redis под этим идентификатором.
func SessionCart(maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(SessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
		}
		// продлеваем TTL куки на каждом запросе
		c.SetCookie(SessionCookie, sid, maxAgeSeconds, "/", "", false, true)

		c.Request = c.Request.WithContext(service.WithSessionID(c.Request.Context(), sid))
		c.Set(CtxSessionID, sid)
		c.Next()
	}
}

// SessionID возвращает идентификатор сессии текущего запроса.
func SessionID(c *gin.Context) string {
	if sid, ok := service.SessionIDFromContext(c.Request.Context()); ok {
		return sid
	}
	return c.GetString(CtxSessionID)
}
