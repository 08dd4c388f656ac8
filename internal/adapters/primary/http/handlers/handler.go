package handlers

import (
	"github.com/gin-gonic/gin"

	"genome-analysis-service/internal/core/services"
)

type Handler struct {
	analysisSvc   *services.AnalysisService
	annotationSvc *services.AnnotationService
}

func New(analysisSvc *services.AnalysisService, annotationSvc *services.AnnotationService) *Handler {
	return &Handler{
		analysisSvc:   analysisSvc,
		annotationSvc: annotationSvc,
	}
}

// RegisterRoutes wires the public surface. Job submission and job queries
// require the service API key; annotation lookups and health do not.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc, analyzeLimit gin.HandlerFunc) {
	r.GET("/health", h.Health)
	r.GET("/variants/:rsid", h.GetVariant)

	protected := r.Group("", auth)
	protected.POST("/analyze", analyzeLimit, h.Analyze)
	protected.GET("/jobs/:id", h.GetJobProgress)
	protected.GET("/jobs/:id/result", h.GetJobResult)
}
