package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/odpf/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/core/dataset/service"
	errs "github.com/odpf/digits/internal/errors"
)

func TestJobService(t *testing.T) {
	logger := log.NewNoop()
	ctx := context.Background()
	savedJob, _ := dataset.NewGenericImageJob("job2", "Job2", "/data/job2", dataset.StatusDone, time.Now(), &dataset.GenericImage{})

	t.Run("GetJob", func(t *testing.T) {
		t.Run("returns not found error when job is absent", func(t *testing.T) {
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("abc123")).
				Return(nil, errs.NotFound(dataset.EntityDatasetJob, "no record for abc123"))
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, 0, 0)

			_, err := svc.GetJob(ctx, "abc123")
			assert.NotNil(t, err)
			assert.True(t, errs.IsErrorType(err, errs.ErrNotFound))
		})
		t.Run("wraps repository errors as internal error", func(t *testing.T) {
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("job2")).Return(nil, errors.New("connection refused"))
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, 0, 0)

			_, err := svc.GetJob(ctx, "job2")
			assert.EqualError(t, err, "internal error for entity dataset_job: unable to get job job2, connection refused")
		})
		t.Run("reports a job that cannot be read back as internal error", func(t *testing.T) {
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("job9")).
				Return(nil, errs.InvalidArgument(dataset.EntityDatasetJob, "invalid status for dataset job Bogus"))
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, 0, 0)

			_, err := svc.GetJob(ctx, "job9")
			assert.True(t, errs.IsErrorType(err, errs.ErrInternalError))
		})
		t.Run("returns the job from repository", func(t *testing.T) {
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("job2")).Return(savedJob, nil)
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, 0, 0)

			job, err := svc.GetJob(ctx, "job2")
			assert.Nil(t, err)
			assert.Equal(t, savedJob, job)
		})
		t.Run("queries repository every time when cache is disabled", func(t *testing.T) {
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("job2")).Return(savedJob, nil).Twice()
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, 0, 0)

			_, err := svc.GetJob(ctx, "job2")
			assert.Nil(t, err)
			_, err = svc.GetJob(ctx, "job2")
			assert.Nil(t, err)
		})
		t.Run("returns cached job without querying repository", func(t *testing.T) {
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("job2")).Return(savedJob, nil).Once()
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, time.Minute, time.Minute)

			first, err := svc.GetJob(ctx, "job2")
			assert.Nil(t, err)
			second, err := svc.GetJob(ctx, "job2")
			assert.Nil(t, err)
			assert.Equal(t, first, second)
		})
		t.Run("does not cache a running job", func(t *testing.T) {
			runningJob, _ := dataset.NewGenericImageJob("job5", "Job5", "/data/job5", dataset.StatusRunning, time.Now(), &dataset.GenericImage{})
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("job5")).Return(runningJob, nil).Twice()
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, time.Minute, time.Minute)

			_, err := svc.GetJob(ctx, "job5")
			assert.Nil(t, err)
			_, err = svc.GetJob(ctx, "job5")
			assert.Nil(t, err)
		})
		t.Run("does not cache not found", func(t *testing.T) {
			repo := new(jobRepository)
			repo.On("GetByID", ctx, dataset.JobID("job4")).
				Return(nil, errs.NotFound(dataset.EntityDatasetJob, "no record for job4")).Once()
			repo.On("GetByID", ctx, dataset.JobID("job4")).Return(savedJob, nil).Once()
			defer repo.AssertExpectations(t)

			svc := service.NewJobService(logger, repo, time.Minute, time.Minute)

			_, err := svc.GetJob(ctx, "job4")
			assert.NotNil(t, err)

			job, err := svc.GetJob(ctx, "job4")
			assert.Nil(t, err)
			assert.Equal(t, savedJob, job)
		})
	})
}

type jobRepository struct {
	mock.Mock
}

func (r *jobRepository) GetByID(ctx context.Context, id dataset.JobID) (*dataset.Job, error) {
	args := r.Called(ctx, id)
	var job *dataset.Job
	if args.Get(0) != nil {
		job = args.Get(0).(*dataset.Job)
	}
	return job, args.Error(1)
}
