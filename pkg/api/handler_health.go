package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/scenecraft/scenecraft/pkg/database"
	"github.com/scenecraft/scenecraft/pkg/queue"
)

// HealthResponse aggregates database and worker pool health.
type HealthResponse struct {
	Status   string                `json:"status"`
	Database database.HealthStatus `json:"database"`
	Pool     *queue.PoolHealth     `json:"pool,omitempty"`
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var dbHealth database.HealthStatus
	var dbErr error
	if s.db != nil {
		dbHealth, dbErr = database.Health(ctx, s.db)
	} else {
		dbHealth = database.HealthStatus{Reachable: true}
	}

	var poolHealth *queue.PoolHealth
	if s.pool != nil {
		poolHealth = s.pool.Health()
	}

	resp := &HealthResponse{
		Status:   "healthy",
		Database: dbHealth,
		Pool:     poolHealth,
	}
	if dbErr != nil || (poolHealth != nil && !poolHealth.IsHealthy) {
		resp.Status = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, resp)
	}
	return c.JSON(http.StatusOK, resp)
}
