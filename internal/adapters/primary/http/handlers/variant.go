package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"genome-analysis-service/internal/adapters/primary/http/dto"
)

func (h *Handler) GetVariant(c *gin.Context) {
	annotation, err := h.annotationSvc.Lookup(c.Param("rsid"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVariantAnnotationResponse(annotation))
}

func (h *Handler) Health(c *gin.Context) {
	stats := h.annotationSvc.Stats()
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:         "ok",
		ClinVarRecords: stats.ClinVarRecords,
		CuratedSNPs:    stats.CuratedSNPs,
		TraitSNPs:      stats.TraitSNPs,
	})
}
