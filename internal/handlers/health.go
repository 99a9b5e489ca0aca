package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"photo-portfolio-backend/internal/models"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	store Pinger
	// Components reports optional clients as "enabled" or "disabled".
	components map[string]bool
}

func NewHealthHandler(db, store Pinger, components map[string]bool) *HealthHandler {
	return &HealthHandler{db: db, store: store, components: components}
}

// Health godoc
// @Summary     Health check
// @Description Reports database and object store reachability and which optional clients are configured
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Failure     503 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	response := models.HealthResponse{
		Status:     "ok",
		Database:   "ok",
		Components: make(map[string]string, len(h.components)+1),
	}
	status := http.StatusOK

	if err := h.db.Ping(ctx); err != nil {
		response.Status = "unavailable"
		response.Database = err.Error()
		status = http.StatusServiceUnavailable
	}

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			response.Components["storage"] = "error: " + err.Error()
			if status == http.StatusOK {
				response.Status = "degraded"
			}
		} else {
			response.Components["storage"] = "ok"
		}
	}

	for name, enabled := range h.components {
		if enabled {
			response.Components[name] = "enabled"
		} else {
			response.Components[name] = "disabled"
		}
	}

	c.JSON(status, response)
}
