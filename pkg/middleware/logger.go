package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		t0 := time.Now()

		c.Next()

		// Obfuscate credentials if a caller forwards them.
		q := c.Request.URL.Query()
		for _, p := range []string{"key", "signature", "client"} {
			if q.Has(p) {
				q.Set(p, "*****")
			}
		}

		slog.InfoContext(c.Request.Context(), "inbound request",
			slog.Group("http",
				slog.Group("request",
					"duration_ms", time.Since(t0).Milliseconds(),
					"method", c.Request.Method,
					slog.Group("url",
						"path", c.Request.URL.Path,
						"query_params", q,
					),
				),
				slog.Group("response",
					"status", c.Writer.Status(),
					"size", c.Writer.Size(),
				),
			),
		)
	}
}
