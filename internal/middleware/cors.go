package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig lists what browsers may send to the API.
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAgeSeconds  int
}

// DefaultCORSConfig allows any origin outside production.
func DefaultCORSConfig(env string) CORSConfig {
	cfg := CORSConfig{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", HeaderRequestID},
		MaxAgeSeconds:  600,
	}
	if env != "production" {
		cfg.AllowedOrigins = []string{"*"}
	}
	return cfg
}

func (m Middleware) CORS() gin.HandlerFunc {
	methods := strings.Join(m.cors.AllowedMethods, ", ")
	headers := strings.Join(m.cors.AllowedHeaders, ", ")
	maxAge := strconv.Itoa(m.cors.MaxAgeSeconds)
	wildcard := slices.Contains(m.cors.AllowedOrigins, "*")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (wildcard || slices.Contains(m.cors.AllowedOrigins, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", methods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Expose-Headers", "Content-Disposition, "+HeaderRequestID)
			c.Header("Access-Control-Max-Age", maxAge)
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
