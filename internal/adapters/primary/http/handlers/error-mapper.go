package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"genome-analysis-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrVariantNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	// Conflict errors
	case errors.Is(err, domain.ErrJobAlreadyExists),
		errors.Is(err, domain.ErrJobNotFinished):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	// Bad request / validation errors
	case errors.Is(err, domain.ErrInvalidJobID),
		errors.Is(err, domain.ErrMissingCallbackURL),
		errors.Is(err, domain.ErrNoGenomeSource),
		errors.Is(err, domain.ErrNoVariantsFound),
		errors.Is(err, domain.ErrInvalidRSID):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	// Overload errors
	case errors.Is(err, domain.ErrQueueFull):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
