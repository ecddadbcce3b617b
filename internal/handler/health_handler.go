package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/cob-engineering/plan-review-api/internal/service"
	"github.com/cob-engineering/plan-review-api/pkg/response"
)

// HealthHandler exposes liveness and a metrics snapshot.
type HealthHandler struct {
	db      *sqlx.DB
	metrics *service.MetricsService
	env     string
}

// NewHealthHandler constructs handler.
func NewHealthHandler(db *sqlx.DB, metrics *service.MetricsService, env string) *HealthHandler {
	return &HealthHandler{db: db, metrics: metrics, env: env}
}

// Health reports process and database health.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if h.db != nil {
		if err := h.db.PingContext(c.Request.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}
	response.JSON(c, code, gin.H{
		"status": status,
		"env":    h.env,
		"time":   time.Now().UTC().Format(time.RFC3339),
	}, nil)
}

// Stats returns the aggregated metrics snapshot.
func (h *HealthHandler) Stats(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.metrics.Snapshot(), nil)
}
