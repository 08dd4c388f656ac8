package memstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genome-analysis-service/internal/core/domain"
)

func TestJobStore_CreateAndGet(t *testing.T) {
	store := NewJobStore()

	job := &domain.AnalysisJob{
		ID:          "job-1",
		Status:      domain.JobStatusQueued,
		SubmittedAt: time.Now(),
	}
	require.NoError(t, store.Create(job))

	got, err := store.Get("job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusQueued, got.Status)
}

func TestJobStore_CreateDuplicate(t *testing.T) {
	store := NewJobStore()

	require.NoError(t, store.Create(&domain.AnalysisJob{ID: "job-1"}))
	err := store.Create(&domain.AnalysisJob{ID: "job-1"})
	assert.ErrorIs(t, err, domain.ErrJobAlreadyExists)
}

func TestJobStore_GetUnknown(t *testing.T) {
	store := NewJobStore()

	_, err := store.Get("nope")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobStore_Update(t *testing.T) {
	store := NewJobStore()
	require.NoError(t, store.Create(&domain.AnalysisJob{ID: "job-1", Status: domain.JobStatusQueued}))

	err := store.Update("job-1", func(job *domain.AnalysisJob) {
		job.Status = domain.JobStatusProcessing
		job.Progress = 30
	})
	require.NoError(t, err)

	got, err := store.Get("job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusProcessing, got.Status)
	assert.Equal(t, 30, got.Progress)
}

func TestJobStore_UpdateUnknown(t *testing.T) {
	store := NewJobStore()

	err := store.Update("nope", func(job *domain.AnalysisJob) {})
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}

func TestJobStore_GetReturnsCopy(t *testing.T) {
	store := NewJobStore()
	require.NoError(t, store.Create(&domain.AnalysisJob{ID: "job-1", Status: domain.JobStatusQueued}))

	got, err := store.Get("job-1")
	require.NoError(t, err)
	got.Status = domain.JobStatusFailed

	again, err := store.Get("job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusQueued, again.Status)
}
