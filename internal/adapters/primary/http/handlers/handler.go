package handlers

import (
	"net/http"

	"ev-range-service/internal/core/services"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	predictionSvc *services.PredictionService
}

func New(predictionSvc *services.PredictionService) *Handler {
	return &Handler{predictionSvc: predictionSvc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	// Predictions
	r.POST("/predictions", h.CreatePrediction)

	// Model introspection
	r.GET("/schema", h.GetSchema)
	r.GET("/model", h.GetModel)
}

// RegisterPages mounts the HTML form. The engine must have the page
// templates loaded.
func (h *Handler) RegisterPages(r gin.IRoutes) {
	r.GET("/", h.ShowForm)
	r.POST("/", h.SubmitForm)
}

func (h *Handler) Healthz(c *gin.Context) {
	if !h.predictionSvc.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "model not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
