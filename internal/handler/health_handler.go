package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elitebooker/elitebooker-backend/pkg/database"
	redislib "github.com/elitebooker/elitebooker-backend/pkg/redis"
	"github.com/elitebooker/elitebooker-backend/pkg/response"
)

// HealthHandler handles liveness and readiness probes
type HealthHandler struct {
	db    *database.PostgresDB
	redis *redislib.Client
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *database.PostgresDB, redis *redislib.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: redis}
}

// Health reports process liveness
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}))
}

// Ready reports whether the backing stores are reachable
// GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{}
	healthy := true

	if err := h.db.Ping(ctx); err != nil {
		checks["postgres"] = err.Error()
		healthy = false
	} else {
		checks["postgres"] = "ok"
	}

	if err := h.redis.Ping(ctx).Err(); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	} else {
		checks["redis"] = "ok"
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.ServiceUnavailable("Dependencies unavailable"))
		return
	}
	c.JSON(http.StatusOK, response.Success(checks))
}
