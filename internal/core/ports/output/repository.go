package ports

import (
	"genome-analysis-service/internal/core/domain"
)

// ClinVarRepository serves lookups over the bundled ClinVar alleles table.
type ClinVarRepository interface {
	Lookup(rsid string) (*domain.ClinVarRecord, bool)
	Count() int
}

// JobStore tracks analysis jobs through their lifecycle.
type JobStore interface {
	Create(job *domain.AnalysisJob) error
	Get(id string) (*domain.AnalysisJob, error)
	Update(id string, fn func(*domain.AnalysisJob)) error
}
