package dataset

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/internal/errors"
)

const (
	jobColumns = `id, job_id, name, kind, directory, status, details, created_at, updated_at`
)

type JobRepository struct {
	db *gorm.DB
}

// Job is the postgres representation of a dataset job
type Job struct {
	ID        uuid.UUID `gorm:"primary_key;type:uuid;default:uuid_generate_v4()"`
	JobID     string    `gorm:"not null"`
	Name      string    `gorm:"not null"`
	Kind      string    `gorm:"not null"`
	Directory string
	Status    string `gorm:"not null"`
	Details   datatypes.JSON

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt
}

func (Job) TableName() string {
	return "dataset_job"
}

func NewJob(job *dataset.Job) (Job, error) {
	var details interface{}
	switch job.Kind() {
	case dataset.KindImageClassification:
		details = job.ImageClassification()
	case dataset.KindGenericImage:
		details = job.GenericImage()
	}

	var detailsJSON datatypes.JSON
	if details != nil {
		jsonBytes, err := json.Marshal(details)
		if err != nil {
			return Job{}, err
		}
		detailsJSON = jsonBytes
	}

	return Job{
		JobID:     job.ID().String(),
		Name:      job.Name(),
		Kind:      job.Kind().String(),
		Directory: job.Directory(),
		Status:    job.Status().String(),
		Details:   detailsJSON,
		CreatedAt: job.CreatedAt(),
	}, nil
}

func (j Job) ToDatasetJob() (*dataset.Job, error) {
	id, err := dataset.JobIDFrom(j.JobID)
	if err != nil {
		return nil, err
	}
	status, err := dataset.StatusFrom(j.Status)
	if err != nil {
		return nil, err
	}
	kind, err := dataset.KindFrom(j.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case dataset.KindImageClassification:
		var details dataset.ImageClassification
		if err := j.unmarshalDetails(&details); err != nil {
			return nil, err
		}
		return dataset.NewImageClassificationJob(id, j.Name, j.Directory, status, j.CreatedAt, &details)
	case dataset.KindGenericImage:
		var details dataset.GenericImage
		if err := j.unmarshalDetails(&details); err != nil {
			return nil, err
		}
		return dataset.NewGenericImageJob(id, j.Name, j.Directory, status, j.CreatedAt, &details)
	default:
		return dataset.NewJob(id, j.Name, j.Directory, status, kind, j.CreatedAt)
	}
}

func (j Job) unmarshalDetails(v interface{}) error {
	if len(j.Details) == 0 {
		return errors.InvalidArgument(dataset.EntityDatasetJob, "details are missing for job "+j.JobID)
	}
	if err := json.Unmarshal(j.Details, v); err != nil {
		return errors.Wrap(dataset.EntityDatasetJob, "unable to decode details for job "+j.JobID, err)
	}
	return nil
}

func (repo JobRepository) Save(ctx context.Context, datasetJob *dataset.Job) error {
	job, err := NewJob(datasetJob)
	if err != nil {
		return errors.Wrap(dataset.EntityDatasetJob, "unable to encode job "+datasetJob.ID().String(), err)
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	_, err = repo.get(ctx, datasetJob.ID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			insertJobQuery := `INSERT INTO dataset_job (job_id, name, kind, directory, status, details, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, now())`
			return repo.db.WithContext(ctx).Exec(insertJobQuery, job.JobID, job.Name, job.Kind, job.Directory,
				job.Status, job.Details, job.CreatedAt).Error
		}
		return errors.Wrap(dataset.EntityDatasetJob, "unable to save job", err)
	}

	updateJobQuery := `UPDATE dataset_job SET name=?, kind=?, directory=?, status=?, details=?, updated_at=now()
WHERE job_id=? AND deleted_at IS NULL`
	return repo.db.WithContext(ctx).Exec(updateJobQuery, job.Name, job.Kind, job.Directory, job.Status,
		job.Details, job.JobID).Error
}

func (repo JobRepository) GetByID(ctx context.Context, id dataset.JobID) (*dataset.Job, error) {
	job, err := repo.get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NotFound(dataset.EntityDatasetJob, "no record for "+id.String())
		}
		return nil, errors.Wrap(dataset.EntityDatasetJob, "error while getting job", err)
	}

	datasetJob, err := job.ToDatasetJob()
	if err != nil {
		return nil, errors.InternalError(dataset.EntityDatasetJob, "stored job "+id.String()+" is corrupt", err)
	}
	return datasetJob, nil
}

func (repo JobRepository) get(ctx context.Context, id dataset.JobID) (Job, error) {
	var job Job

	getJobByIDQuery := `SELECT ` + jobColumns + ` FROM dataset_job WHERE job_id = ? AND deleted_at IS NULL`
	err := repo.db.WithContext(ctx).Raw(getJobByIDQuery, id.String()).First(&job).Error
	if err != nil {
		return Job{}, err
	}
	return job, nil
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{
		db: db,
	}
}
