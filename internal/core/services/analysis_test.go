package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"genome-analysis-service/internal/adapters/secondary/memstore"
	"genome-analysis-service/internal/core/domain"
	"genome-analysis-service/internal/testutil"
)

const sampleGenome = "# sample export\n" +
	"rsid\tchromosome\tposition\tgenotype\n" +
	"rs1801133\t1\t11856378\tTT\n" +
	"rs4680\t22\t19963748\tAA\n" +
	"rs429358\t19\t44908684\tTT\n"

type analysisFixture struct {
	svc      *AnalysisService
	jobs     *memstore.JobStore
	fetcher  *testutil.MockGenomeFetcher
	callback *testutil.MockCallbackClient
	cancel   context.CancelFunc
}

func newAnalysisFixture(t *testing.T, workers, queueSize int) *analysisFixture {
	t.Helper()

	jobs := memstore.NewJobStore()
	fetcher := new(testutil.MockGenomeFetcher)
	cb := new(testutil.MockCallbackClient)
	svc := NewAnalysisService(NewRiskAnalyzer(emptyClinVar()), jobs, fetcher, cb, workers, queueSize)

	ctx, cancel := context.WithCancel(context.Background())
	svc.Start(ctx)
	t.Cleanup(func() {
		cancel()
		_ = svc.Wait()
	})

	return &analysisFixture{svc: svc, jobs: jobs, fetcher: fetcher, callback: cb, cancel: cancel}
}

func waitForCallback(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
	}
}

func TestAnalysisService_InlineContentCompletes(t *testing.T) {
	f := newAnalysisFixture(t, 1, 4)

	done := make(chan struct{})
	f.callback.On("Send", mock.Anything, "http://example.com/cb", mock.AnythingOfType("domain.CallbackPayload")).
		Return(nil).
		Run(func(args mock.Arguments) { close(done) })

	err := f.svc.Submit(domain.AnalysisRequest{
		JobID:         "job-1",
		SourceFormat:  Format23AndMe,
		GenomeContent: sampleGenome,
		CallbackURL:   "http://example.com/cb",
	})
	require.NoError(t, err)

	waitForCallback(t, done)

	job, err := f.svc.Result("job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
	assert.Equal(t, 100, job.Progress)
	require.NotNil(t, job.Result)
	assert.Equal(t, 3, job.Result.SNPCount)
	assert.Contains(t, job.Result.Reports, "disease_risk")
	assert.Contains(t, job.Result.Reports, "traits")

	payload := f.callback.Calls[0].Arguments.Get(2).(domain.CallbackPayload)
	assert.Equal(t, "job-1", payload.JobID)
	assert.Equal(t, domain.JobStatusCompleted, payload.Status)
	require.NotNil(t, payload.FindingsSummary)
	assert.Equal(t, 3, payload.FindingsSummary.TotalSNPsAnalyzed)
}

func TestAnalysisService_DownloadsWhenNoInlineContent(t *testing.T) {
	f := newAnalysisFixture(t, 1, 4)

	f.fetcher.On("Fetch", mock.Anything, "http://example.com/genome.txt", "key-1").
		Return(sampleGenome, nil)

	done := make(chan struct{})
	f.callback.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) { close(done) })

	err := f.svc.Submit(domain.AnalysisRequest{
		JobID:        "job-2",
		SourceFormat: Format23AndMe,
		FileURL:      "http://example.com/genome.txt",
		CallbackURL:  "http://example.com/cb",
		APIKey:       "key-1",
	})
	require.NoError(t, err)

	waitForCallback(t, done)
	f.fetcher.AssertExpectations(t)

	job, err := f.svc.Result("job-2")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusCompleted, job.Status)
}

func TestAnalysisService_DownloadFailureNotifiesCallback(t *testing.T) {
	f := newAnalysisFixture(t, 1, 4)

	f.fetcher.On("Fetch", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	done := make(chan struct{})
	f.callback.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) { close(done) })

	err := f.svc.Submit(domain.AnalysisRequest{
		JobID:       "job-3",
		FileURL:     "http://example.com/genome.txt",
		CallbackURL: "http://example.com/cb",
	})
	require.NoError(t, err)

	waitForCallback(t, done)

	job, err := f.svc.Result("job-3")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
	assert.Contains(t, job.Error, "connection refused")

	payload := f.callback.Calls[0].Arguments.Get(2).(domain.CallbackPayload)
	assert.Equal(t, domain.JobStatusFailed, payload.Status)
	assert.Contains(t, payload.Error, "connection refused")
}

func TestAnalysisService_UnparsableContentFailsJob(t *testing.T) {
	f := newAnalysisFixture(t, 1, 4)

	done := make(chan struct{})
	f.callback.On("Send", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Run(func(args mock.Arguments) { close(done) })

	err := f.svc.Submit(domain.AnalysisRequest{
		JobID:         "job-4",
		SourceFormat:  Format23AndMe,
		GenomeContent: "# nothing but comments\n",
		CallbackURL:   "http://example.com/cb",
	})
	require.NoError(t, err)

	waitForCallback(t, done)

	job, err := f.svc.Result("job-4")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
}

func TestAnalysisService_SubmitValidation(t *testing.T) {
	jobs := memstore.NewJobStore()
	svc := NewAnalysisService(NewRiskAnalyzer(emptyClinVar()), jobs, new(testutil.MockGenomeFetcher), new(testutil.MockCallbackClient), 1, 4)

	err := svc.Submit(domain.AnalysisRequest{CallbackURL: "http://cb", GenomeContent: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidJobID)

	err = svc.Submit(domain.AnalysisRequest{JobID: "j", GenomeContent: "x"})
	assert.ErrorIs(t, err, domain.ErrMissingCallbackURL)

	err = svc.Submit(domain.AnalysisRequest{JobID: "j", CallbackURL: "http://cb"})
	assert.ErrorIs(t, err, domain.ErrNoGenomeSource)
}

func TestAnalysisService_SubmitDuplicateJobID(t *testing.T) {
	jobs := memstore.NewJobStore()
	svc := NewAnalysisService(NewRiskAnalyzer(emptyClinVar()), jobs, new(testutil.MockGenomeFetcher), new(testutil.MockCallbackClient), 1, 4)

	req := domain.AnalysisRequest{JobID: "dup", CallbackURL: "http://cb", GenomeContent: sampleGenome}
	require.NoError(t, svc.Submit(req))

	err := svc.Submit(req)
	assert.ErrorIs(t, err, domain.ErrJobAlreadyExists)
}

func TestAnalysisService_QueueFull(t *testing.T) {
	// No workers started, so the queue never drains.
	jobs := memstore.NewJobStore()
	svc := NewAnalysisService(NewRiskAnalyzer(emptyClinVar()), jobs, new(testutil.MockGenomeFetcher), new(testutil.MockCallbackClient), 1, 1)

	require.NoError(t, svc.Submit(domain.AnalysisRequest{JobID: "q-1", CallbackURL: "http://cb", GenomeContent: "x"}))

	err := svc.Submit(domain.AnalysisRequest{JobID: "q-2", CallbackURL: "http://cb", GenomeContent: "x"})
	assert.ErrorIs(t, err, domain.ErrQueueFull)

	job, err := jobs.Get("q-2")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusFailed, job.Status)
}

func TestAnalysisService_ResultBeforeCompletion(t *testing.T) {
	jobs := memstore.NewJobStore()
	svc := NewAnalysisService(NewRiskAnalyzer(emptyClinVar()), jobs, new(testutil.MockGenomeFetcher), new(testutil.MockCallbackClient), 1, 4)

	require.NoError(t, svc.Submit(domain.AnalysisRequest{JobID: "pending", CallbackURL: "http://cb", GenomeContent: sampleGenome}))

	_, err := svc.Result("pending")
	assert.ErrorIs(t, err, domain.ErrJobNotFinished)

	job, err := svc.Progress("pending")
	require.NoError(t, err)
	assert.Equal(t, domain.JobStatusQueued, job.Status)
}

func TestAnalysisService_UnknownJob(t *testing.T) {
	jobs := memstore.NewJobStore()
	svc := NewAnalysisService(NewRiskAnalyzer(emptyClinVar()), jobs, new(testutil.MockGenomeFetcher), new(testutil.MockCallbackClient), 1, 4)

	_, err := svc.Progress("nope")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
	_, err = svc.Result("nope")
	assert.ErrorIs(t, err, domain.ErrJobNotFound)
}
