package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolregistry/internal/app/models/dto"
	"github.com/yigit/schoolregistry/internal/middleware"
	"github.com/yigit/schoolregistry/internal/pkg/logger"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController serves the liveness endpoint
type HealthController struct {
	db Pinger
}

// NewHealthController creates a new HealthController
func NewHealthController(db Pinger) *HealthController {
	return &HealthController{db: db}
}

// Health reports UP when the database answers a ping
func (c *HealthController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check database ping failed")
		middleware.Respond(ctx, http.StatusServiceUnavailable, dto.HealthResponse{Status: "DOWN", Database: "DOWN"})
		return
	}

	middleware.Respond(ctx, http.StatusOK, dto.HealthResponse{Status: "UP", Database: "UP"})
}
