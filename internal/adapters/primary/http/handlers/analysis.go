package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"genome-analysis-service/internal/adapters/primary/http/dto"
	"genome-analysis-service/internal/core/domain"
)

func (h *Handler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysisReq := req.ToDomain()
	if analysisReq.APIKey == "" {
		// Reuse the caller's key for the genome download, as the caller did.
		analysisReq.APIKey = c.GetHeader("X-API-Key")
	}

	if err := h.analysisSvc.Submit(analysisReq); err != nil {
		log.WithField("job_id", req.JobID).WithError(err).Error("submit analysis failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, dto.AnalyzeAcceptedResponse{
		Status: string(domain.JobStatusProcessing),
		JobID:  req.JobID,
	})
}

func (h *Handler) GetJobProgress(c *gin.Context) {
	job, err := h.analysisSvc.Progress(c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobProgressResponse(job))
}

func (h *Handler) GetJobResult(c *gin.Context) {
	job, err := h.analysisSvc.Result(c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJobResultResponse(job))
}
