package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"genome-analysis-service/internal/core/domain"
)

// MockClinVarRepo is a mock of ClinVarRepository.
type MockClinVarRepo struct {
	mock.Mock
}

func (m *MockClinVarRepo) Lookup(rsid string) (*domain.ClinVarRecord, bool) {
	args := m.Called(rsid)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.ClinVarRecord), args.Bool(1)
}

func (m *MockClinVarRepo) Count() int {
	args := m.Called()
	return args.Int(0)
}

// MockGenomeFetcher is a mock of GenomeFetcher.
type MockGenomeFetcher struct {
	mock.Mock
}

func (m *MockGenomeFetcher) Fetch(ctx context.Context, url, apiKey string) (string, error) {
	args := m.Called(ctx, url, apiKey)
	return args.String(0), args.Error(1)
}

// MockCallbackClient is a mock of CallbackClient.
type MockCallbackClient struct {
	mock.Mock
}

func (m *MockCallbackClient) Send(ctx context.Context, url string, payload domain.CallbackPayload) error {
	args := m.Called(ctx, url, payload)
	return args.Error(0)
}

// MockJobStore is a mock of JobStore.
type MockJobStore struct {
	mock.Mock
}

func (m *MockJobStore) Create(job *domain.AnalysisJob) error {
	args := m.Called(job)
	return args.Error(0)
}

func (m *MockJobStore) Get(id string) (*domain.AnalysisJob, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalysisJob), args.Error(1)
}

func (m *MockJobStore) Update(id string, fn func(*domain.AnalysisJob)) error {
	args := m.Called(id, fn)
	return args.Error(0)
}
