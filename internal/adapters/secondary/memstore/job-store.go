package memstore

import (
	"sync"

	"genome-analysis-service/internal/core/domain"
)

// JobStore is an in-memory job tracker. Jobs are ephemeral: results leave the
// service through the callback, so nothing is persisted across restarts.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[string]*domain.AnalysisJob
}

func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[string]*domain.AnalysisJob)}
}

func (s *JobStore) Create(job *domain.AnalysisJob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[job.ID]; ok {
		return domain.ErrJobAlreadyExists
	}

	clone := *job
	s.jobs[job.ID] = &clone
	return nil
}

func (s *JobStore) Get(id string) (*domain.AnalysisJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, domain.ErrJobNotFound
	}

	clone := *job
	return &clone, nil
}

func (s *JobStore) Update(id string, fn func(*domain.AnalysisJob)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return domain.ErrJobNotFound
	}

	fn(job)
	return nil
}
