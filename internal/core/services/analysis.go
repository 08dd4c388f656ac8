package services

import (
	"context"
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"genome-analysis-service/internal/core/domain"
	ports "genome-analysis-service/internal/core/ports/output"
)

var jobsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "genome_analysis_jobs_total",
	Help: "Analysis jobs processed, by final status.",
}, []string{"status"})

// AnalysisService runs the full analysis pipeline on a bounded worker pool
// and delivers results to the caller's callback URL.
type AnalysisService struct {
	risk     *RiskAnalyzer
	jobs     ports.JobStore
	fetcher  ports.GenomeFetcher
	callback ports.CallbackClient

	queue   chan domain.AnalysisRequest
	workers int
	group   *errgroup.Group
}

func NewAnalysisService(risk *RiskAnalyzer, jobs ports.JobStore, fetcher ports.GenomeFetcher, callback ports.CallbackClient, workers, queueSize int) *AnalysisService {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = workers
	}
	return &AnalysisService{
		risk:     risk,
		jobs:     jobs,
		fetcher:  fetcher,
		callback: callback,
		queue:    make(chan domain.AnalysisRequest, queueSize),
		workers:  workers,
	}
}

// Start launches the worker pool. Workers drain the queue until ctx is
// cancelled.
func (s *AnalysisService) Start(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < s.workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case req := <-s.queue:
					s.process(ctx, req)
				}
			}
		})
	}
	s.group = g
}

// Wait blocks until all workers have exited.
func (s *AnalysisService) Wait() error {
	if s.group == nil {
		return nil
	}
	return s.group.Wait()
}

// Submit validates and enqueues an analysis request. It never blocks the
// caller: a full queue is reported as an error.
func (s *AnalysisService) Submit(req domain.AnalysisRequest) error {
	if req.JobID == "" {
		return domain.ErrInvalidJobID
	}
	if req.CallbackURL == "" {
		return domain.ErrMissingCallbackURL
	}
	if req.GenomeContent == "" && req.FileURL == "" {
		return domain.ErrNoGenomeSource
	}

	job := &domain.AnalysisJob{
		ID:          req.JobID,
		Status:      domain.JobStatusQueued,
		CurrentStep: "queued",
		SubmittedAt: time.Now(),
	}
	if err := s.jobs.Create(job); err != nil {
		return err
	}

	select {
	case s.queue <- req:
		return nil
	default:
		s.fail(context.Background(), req, domain.ErrQueueFull.Error(), false)
		return domain.ErrQueueFull
	}
}

// Progress returns the current state of a job.
func (s *AnalysisService) Progress(id string) (*domain.AnalysisJob, error) {
	return s.jobs.Get(id)
}

// Result returns the finished output of a job, or ErrJobNotFinished while the
// job is still in flight.
func (s *AnalysisService) Result(id string) (*domain.AnalysisJob, error) {
	job, err := s.jobs.Get(id)
	if err != nil {
		return nil, err
	}
	if job.Status != domain.JobStatusCompleted && job.Status != domain.JobStatusFailed {
		return nil, domain.ErrJobNotFinished
	}
	return job, nil
}

func (s *AnalysisService) process(ctx context.Context, req domain.AnalysisRequest) {
	logger := log.WithField("job_id", req.JobID)

	content := req.GenomeContent
	if content == "" {
		s.step(req.JobID, 10, "downloading genome file")
		logger.WithField("url", req.FileURL).Info("downloading genome file")

		downloaded, err := s.fetcher.Fetch(ctx, req.FileURL, req.APIKey)
		if err != nil {
			logger.WithError(err).Error("genome download failed")
			s.fail(ctx, req, err.Error(), true)
			return
		}
		content = downloaded
		logger.Infof("downloaded %d bytes", len(downloaded))
	}

	s.step(req.JobID, 30, "parsing genome file")
	variants, err := ParseGenome(content, req.SourceFormat)
	if err != nil {
		logger.WithError(err).Error("genome parsing failed")
		s.fail(ctx, req, err.Error(), true)
		return
	}

	s.step(req.JobID, 55, "disease risk analysis")
	riskResult := s.risk.Analyze(variants)

	s.step(req.JobID, 75, "traits analysis")
	traitsResult := AnalyzeTraits(variants)
	logger.Infof("traits analysis: %d found, %d not available", traitsResult.TraitsFound, traitsResult.TraitsNotFound)

	s.step(req.JobID, 90, "generating reports")
	reports := GenerateReports(riskResult, traitsResult)

	result := &domain.AnalysisResult{
		SNPCount:        len(variants),
		FindingsSummary: buildFindingsSummary(riskResult, traitsResult),
		Reports:         reports,
	}

	now := time.Now()
	_ = s.jobs.Update(req.JobID, func(job *domain.AnalysisJob) {
		job.Status = domain.JobStatusCompleted
		job.Progress = 100
		job.CurrentStep = "completed"
		job.FinishedAt = &now
		job.Result = result
	})
	jobsProcessed.WithLabelValues(string(domain.JobStatusCompleted)).Inc()
	logger.Infof("analysis complete: %d SNPs, %d reports", result.SNPCount, len(reports))

	if err := s.callback.Send(ctx, req.CallbackURL, domain.CallbackPayload{
		JobID:           req.JobID,
		Status:          domain.JobStatusCompleted,
		SNPCount:        result.SNPCount,
		FindingsSummary: &result.FindingsSummary,
		Reports:         reports,
	}); err != nil {
		logger.WithError(err).Error("completion callback failed")
		return
	}
	logger.Info("callback sent successfully")
}

func (s *AnalysisService) step(jobID string, progress int, stepName string) {
	_ = s.jobs.Update(jobID, func(job *domain.AnalysisJob) {
		job.Status = domain.JobStatusProcessing
		job.Progress = progress
		job.CurrentStep = stepName
	})
}

func (s *AnalysisService) fail(ctx context.Context, req domain.AnalysisRequest, errMsg string, notify bool) {
	now := time.Now()
	_ = s.jobs.Update(req.JobID, func(job *domain.AnalysisJob) {
		job.Status = domain.JobStatusFailed
		job.CurrentStep = "failed"
		job.FinishedAt = &now
		job.Error = errMsg
	})
	jobsProcessed.WithLabelValues(string(domain.JobStatusFailed)).Inc()

	if !notify {
		return
	}
	if err := s.callback.Send(ctx, req.CallbackURL, domain.CallbackPayload{
		JobID:  req.JobID,
		Status: domain.JobStatusFailed,
		Error:  errMsg,
	}); err != nil {
		log.WithField("job_id", req.JobID).WithError(err).Error("failure callback failed")
	}
}

func buildFindingsSummary(risk *domain.DiseaseRiskResult, traits *domain.TraitsAnalysisResult) domain.FindingsSummary {
	categories := make([]domain.CategoryCount, 0, len(risk.Categories))
	names := make([]string, 0, len(risk.Categories))
	for name := range risk.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		categories = append(categories, domain.CategoryCount{Category: name, Count: risk.Categories[name]})
	}

	return domain.FindingsSummary{
		TotalSNPsAnalyzed:       risk.TotalVariantsAnalyzed,
		ClinVarMatches:          risk.ClinVarMatches,
		HighRiskVariants:        len(risk.HighRiskVariants),
		ModerateRiskVariants:    len(risk.ModerateRiskVariants),
		PharmacogenomicVariants: len(risk.PharmacogenomicVariants),
		TraitsAnalyzed:          traits.TraitsFound,
		Categories:              categories,
	}
}
