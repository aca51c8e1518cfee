package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/c3devs/novamuse/internal/adapters/http/dto"
	"github.com/c3devs/novamuse/internal/platform/logging"
)

// Recovery returns middleware that recovers from panics. It goes first in
// the chain and also installs logger as the request's context logger, so
// everything after it enriches the same logger.
//
// On panic it logs the stack at ERROR level and answers 500: the JSON
// error envelope under /api/ and /-/, a plain page elsewhere.
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))

		defer func() {
			r := recover()
			if r == nil {
				return
			}

			traceID := dto.TraceID(c.Request.Context())

			logging.FromContext(c.Request.Context()).Error("panic recovered",
				slog.Any("error", r),
				slog.String("stack", string(debug.Stack())),
				slog.String("path", c.Request.URL.Path),
				slog.String("method", c.Request.Method),
				slog.String("trace_id", traceID),
			)

			if c.Writer.Written() {
				c.Abort()
				return
			}

			if wantsJSON(c.Request.URL.Path) {
				errResp := dto.NewErrorResponse(dto.ErrorCodeInternal, "an internal error occurred")
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResp.WithTraceID(traceID))

				return
			}

			c.Abort()
			c.String(http.StatusInternalServerError, "Something went wrong. Please try again.")
		}()

		c.Next()
	}
}

func wantsJSON(path string) bool {
	return strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/-/")
}
