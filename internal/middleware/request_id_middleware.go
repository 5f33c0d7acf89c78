package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDHeader — заголовок сквозного идентификатора запроса
const requestIDHeader = "X-Request-ID"

// RequestID проставляет идентификатор запроса: берёт клиентский, если передан,
// иначе генерирует новый. Идентификатор кладётся в контекст и в заголовок ответа.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}
