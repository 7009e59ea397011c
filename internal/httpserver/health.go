package httpserver

import (
	"context"
	"net/http"

	"webaudit-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthMessage = "Web Optimizer Pro audit API"
	HealthVersion = "2.0.0"
	ServiceName   = "webaudit-srv"
)

// probe checks one optional dependency. Only configured ones are listed.
type probe struct {
	name  string
	label string
	check func(ctx context.Context) error
}

func (srv *HTTPServer) probes() []probe {
	var ps []probe
	if srv.redisClient != nil {
		ps = append(ps, probe{name: "redis", label: "Redis", check: srv.redisClient.Ping})
	}
	if srv.minioClient != nil {
		ps = append(ps, probe{name: "minio", label: "MinIO", check: srv.minioClient.HealthCheck})
	}
	if srv.kafkaProducer != nil {
		ps = append(ps, probe{name: "kafka", label: "Kafka", check: func(context.Context) error {
			return srv.kafkaProducer.HealthCheck()
		}})
	}
	return ps
}

func identity(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}

// @Summary Health Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, identity("healthy"))
}

// readyCheck fails with 503 on the first configured dependency that does not answer.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	deps := gin.H{
		"session_backend": srv.config.Session.Backend,
		"gemini":          srv.config.Gemini.Model,
	}

	for _, p := range srv.probes() {
		if err := p.check(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s check failed: %v", p.name, err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": p.label + " connection failed",
				"error":   err.Error(),
			})
			return
		}
		deps[p.name] = "connected"
	}

	body := identity("ready")
	body["dependencies"] = deps
	response.OK(c, body)
}

// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, identity("alive"))
}
