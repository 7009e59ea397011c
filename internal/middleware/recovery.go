package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"webaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 and a Discord report.
// http.ErrAbortHandler is re-raised so net/http can drop the connection.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
				panic(rec)
			}

			m.l.Errorf(c.Request.Context(), "middleware.Recovery: %s %s panicked: %v\n%s",
				c.Request.Method, c.Request.URL.Path, rec, debug.Stack())
			if c.Writer.Written() {
				c.Abort()
				return
			}
			response.PanicError(c, rec, m.discord)
			c.Abort()
		}()
		c.Next()
	}
}
