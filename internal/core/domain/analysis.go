package domain

import "time"

type JobStatus string

const (
	JobStatusQueued     JobStatus = "queued"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// AnalysisRequest is a submitted genome analysis. Genome data arrives either
// inline (small exports) or as a URL to download (large ones).
type AnalysisRequest struct {
	JobID         string
	SourceFormat  string
	GenomeContent string
	FileURL       string
	CallbackURL   string
	APIKey        string
}

// AnalysisJob tracks one request through the worker pool.
type AnalysisJob struct {
	ID          string
	Status      JobStatus
	Progress    int
	CurrentStep string
	SubmittedAt time.Time
	FinishedAt  *time.Time
	Error       string
	Result      *AnalysisResult
}

// AnalysisResult is the finished output of the full pipeline.
type AnalysisResult struct {
	SNPCount        int
	FindingsSummary FindingsSummary
	Reports         map[string]string
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	HighRisk int    `json:"highRisk"`
}

type FindingsSummary struct {
	TotalSNPsAnalyzed       int             `json:"totalSnpsAnalyzed"`
	ClinVarMatches          int             `json:"clinvarMatches"`
	HighRiskVariants        int             `json:"highRiskVariants"`
	ModerateRiskVariants    int             `json:"moderateRiskVariants"`
	PharmacogenomicVariants int             `json:"pharmacogenomicVariants"`
	TraitsAnalyzed          int             `json:"traitsAnalyzed"`
	Categories              []CategoryCount `json:"categories"`
}

// CallbackPayload is what gets POSTed back to the caller when a job finishes.
type CallbackPayload struct {
	JobID           string            `json:"jobId"`
	Status          JobStatus         `json:"status"`
	SNPCount        int               `json:"snpCount,omitempty"`
	FindingsSummary *FindingsSummary  `json:"findingsSummary,omitempty"`
	Reports         map[string]string `json:"reports,omitempty"`
	Error           string            `json:"error,omitempty"`
}
