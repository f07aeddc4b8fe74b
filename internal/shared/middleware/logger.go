package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Logger emits one structured line per request after the handler chain
// completes. The raw path is captured up front because handlers may
// rewrite the URL.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", c.Writer.Status()).
			Dur("latency_ms", time.Since(start)).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Msg("request completed")
	}
}
