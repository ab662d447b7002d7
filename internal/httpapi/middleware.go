// SPDX-License-Identifier: MIT

package httpapi

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/airroute/internal/logging"
)

const (
	ctxKeyRequestID = "request_id"
	maxRequestIDLen = 128
)

// requestID adopts the caller's X-Request-ID or mints a UUID, echoes it on
// the response and stores a request-scoped logger in the request context.
func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Header(HeaderRequestID, id)

		ctx := logging.WithLogger(c.Request.Context(), s.log.With("request_id", id))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// accessLog writes one record per request once the handlers have run.
func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}
		logging.FromContext(c.Request.Context()).Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// recovery turns a handler panic into a 500 and logs it with the request id.
func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		logging.FromContext(c.Request.Context()).Error("handler panic",
			"path", c.Request.URL.Path,
			"panic", fmt.Sprint(rec),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
}
