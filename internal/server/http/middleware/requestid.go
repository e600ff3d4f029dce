package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request identifier.
const RequestIDHeader = "X-Request-ID"

// requestIDContextKey is a gin context key for the request identifier.
const requestIDContextKey = "requestID"

// RequestID assigns every request a unique identifier, honouring one
// supplied by the client, and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID extracts the request identifier from gin context.
func GetRequestID(c *gin.Context) string {
	val, ok := c.Get(requestIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}
