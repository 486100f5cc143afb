package handlers

import (
	"errors"
	"net/http"

	"ev-range-service/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch {
	// Bad request / validation errors
	case errors.Is(err, domain.ErrUnknownCategory),
		errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest

	// The request was valid but the model cannot consume its encoding
	case errors.Is(err, domain.ErrSchemaMismatch):
		return http.StatusUnprocessableEntity

	// Service unavailable errors
	case errors.Is(err, domain.ErrModelNotLoaded):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

func mapDomainError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
