package server

import (
	"time"

	"github.com/gin-gonic/gin"
)

const (
	headerUserID = "X-User-ID"
	headerAdmin  = "X-Admin"

	ctxUserID  = "user_id"
	ctxIsAdmin = "is_admin"
)

// identity lifts the opaque caller identity out of headers. Session and
// cookie handling live upstream; this layer only consumes the result.
func identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ctxUserID, c.GetHeader(headerUserID))
		c.Set(ctxIsAdmin, c.GetHeader(headerAdmin) == "true")
		c.Next()
	}
}

func requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(ctxIsAdmin) {
			c.AbortWithStatusJSON(403, gin.H{"error": "admin only"})
			return
		}
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}
