package httpserver

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"webaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const apiPrefix = "/api/"

// registerStatic serves the built dashboard. Paths that are not files fall back to index.html
// so client side routes survive a reload. Unknown API paths stay JSON.
func (srv *HTTPServer) registerStatic(ctx context.Context) {
	dir := srv.config.Static.Dir
	index := filepath.Join(dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		srv.l.Warnf(ctx, "httpserver.registerStatic: %s not found, dashboard disabled", index)
		dir = ""
	}

	srv.gin.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if strings.HasPrefix(p, apiPrefix) || dir == "" ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			c.JSON(http.StatusNotFound, response.Resp{
				ErrorCode: http.StatusNotFound,
				Message:   "Not found",
			})
			return
		}

		if f, ok := staticFile(dir, p); ok {
			c.File(f)
			return
		}
		c.File(index)
	})
}

// staticFile resolves p inside dir. It refuses paths escaping dir and directories.
func staticFile(dir, p string) (string, bool) {
	clean := filepath.Clean("/" + p)
	if clean == "/" {
		return "", false
	}
	full := filepath.Join(dir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return "", false
	}
	return full, true
}
