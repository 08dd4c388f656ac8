package dto

import (
	"genome-analysis-service/internal/core/domain"
)

type AnalyzeRequest struct {
	JobID         string `json:"jobId"`
	SourceFormat  string `json:"sourceFormat"`
	GenomeContent string `json:"genomeContent"`
	FileURL       string `json:"fileUrl"`
	CallbackURL   string `json:"callbackUrl"`
	APIKey        string `json:"apiKey"`
}

func (r AnalyzeRequest) ToDomain() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		JobID:         r.JobID,
		SourceFormat:  r.SourceFormat,
		GenomeContent: r.GenomeContent,
		FileURL:       r.FileURL,
		CallbackURL:   r.CallbackURL,
		APIKey:        r.APIKey,
	}
}

type AnalyzeAcceptedResponse struct {
	Status string `json:"status"`
	JobID  string `json:"jobId"`
}

type JobProgressResponse struct {
	JobID       string `json:"jobId"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	CurrentStep string `json:"currentStep"`
	Error       string `json:"error,omitempty"`
}

func ToJobProgressResponse(job *domain.AnalysisJob) JobProgressResponse {
	return JobProgressResponse{
		JobID:       job.ID,
		Status:      string(job.Status),
		Progress:    job.Progress,
		CurrentStep: job.CurrentStep,
		Error:       job.Error,
	}
}

type JobResultResponse struct {
	JobID           string                  `json:"jobId"`
	Status          string                  `json:"status"`
	SNPCount        int                     `json:"snpCount,omitempty"`
	FindingsSummary *domain.FindingsSummary `json:"findingsSummary,omitempty"`
	Reports         map[string]string       `json:"reports,omitempty"`
	Error           string                  `json:"error,omitempty"`
}

func ToJobResultResponse(job *domain.AnalysisJob) JobResultResponse {
	resp := JobResultResponse{
		JobID:  job.ID,
		Status: string(job.Status),
		Error:  job.Error,
	}
	if job.Result != nil {
		resp.SNPCount = job.Result.SNPCount
		resp.FindingsSummary = &job.Result.FindingsSummary
		resp.Reports = job.Result.Reports
	}
	return resp
}
