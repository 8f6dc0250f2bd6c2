package service

import (
	"context"
	"time"

	"github.com/odpf/salt/log"
	"github.com/patrickmn/go-cache"

	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/internal/errors"
	"github.com/odpf/digits/internal/telemetry"
)

const metricCachedJobs = "dataset_registry_cached_jobs"

type JobRepository interface {
	GetByID(context.Context, dataset.JobID) (*dataset.Job, error)
}

// JobService resolves dataset jobs written by the scheduler. Only finished
// jobs are cached, the status of a running job is always read from storage
type JobService struct {
	repo   JobRepository
	cache  *cache.Cache
	logger log.Logger
}

func (s *JobService) GetJob(ctx context.Context, id dataset.JobID) (*dataset.Job, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(id.String()); ok {
			return cached.(*dataset.Job), nil
		}
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrNotFound) {
			return nil, err
		}
		s.logger.Error("unable to get dataset job", "job_id", id.String(), "error", err)
		return nil, errors.InternalError(dataset.EntityDatasetJob, "unable to get job "+id.String(), err)
	}

	if s.cache != nil && !job.Status().IsRunning() {
		s.cache.SetDefault(id.String(), job)
		telemetry.NewGauge(metricCachedJobs, nil).Set(float64(s.cache.ItemCount()))
	}
	return job, nil
}

// NewJobService creates the service, caching is disabled when ttl is not positive
func NewJobService(logger log.Logger, repo JobRepository, ttl, cleanupInterval time.Duration) *JobService {
	s := &JobService{
		repo:   repo,
		logger: logger,
	}
	if ttl > 0 {
		s.cache = cache.New(ttl, cleanupInterval)
	}
	return s
}
