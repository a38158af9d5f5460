package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/walkout/backend/internal/infrastructure/persistence"
)

// HealthHandler reports service liveness
type HealthHandler struct {
	BaseHandler
	db *persistence.Database
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *persistence.Database) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns service status including database reachability
func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "ok"
	if err := h.db.Ping(); err != nil {
		dbStatus = "unreachable"
	}

	h.Success(c, gin.H{
		"status":   "ok",
		"database": dbStatus,
		"time":     time.Now().UTC(),
	})
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}
