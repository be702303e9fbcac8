package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/muhammadolammi/resumeclf/internal/classify"
	"github.com/muhammadolammi/resumeclf/internal/model"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	models classify.Models
}

func NewHealthHandler(models classify.Models) *HealthHandler {
	return &HealthHandler{models: models}
}

// ModelStatus is the body of GET /ready.
type ModelStatus struct {
	Status     string   `json:"status"`
	Categories []string `json:"categories,omitempty"`
	Features   int      `json:"features,omitempty"`
	Reason     string   `json:"reason,omitempty"`
	Hint       string   `json:"hint,omitempty"`
}

// Health handles GET /health. It reports liveness only.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// Ready handles GET /ready. The first call may trigger the model load.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	if h.models == nil {
		c.JSON(http.StatusServiceUnavailable, ModelStatus{Status: "not ready", Reason: "no model loader configured", Hint: model.ExportHint})
		return
	}
	b, err := h.models.Models(ctx)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, ModelStatus{Status: "not ready", Reason: err.Error(), Hint: model.ExportHint})
		return
	}
	c.JSON(http.StatusOK, ModelStatus{
		Status:     "ready",
		Categories: b.Encoder.Classes,
		Features:   b.Vectorizer.Dim(),
	})
}
