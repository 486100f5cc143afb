package handlers

import (
	"net/http"

	"ev-range-service/internal/adapters/primary/http/dto"
	"ev-range-service/internal/adapters/primary/http/middleware"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func (h *Handler) CreatePrediction(c *gin.Context) {
	var req dto.PredictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	spec, err := dto.ToVehicleSpec(req)
	if err != nil {
		mapDomainError(c, err)
		return
	}

	prediction, err := h.predictionSvc.Predict(c.Request.Context(), spec)
	if err != nil {
		log.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error("predict range failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictionResponse(prediction))
}

func (h *Handler) GetSchema(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSchemaResponse())
}

func (h *Handler) GetModel(c *gin.Context) {
	info, err := h.predictionSvc.ModelInfo()
	if err != nil {
		mapDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToModelInfoResponse(info))
}
