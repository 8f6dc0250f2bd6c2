package dataset

import (
	"time"

	"github.com/odpf/digits/internal/errors"
)

const EntityDatasetJob = "dataset_job"

const (
	SummaryKeyID        = "id"
	SummaryKeyName      = "name"
	SummaryKeyDirectory = "directory"
	SummaryKeyStatus    = "status"
)

type JobID string

func JobIDFrom(id string) (JobID, error) {
	if id == "" {
		return "", errors.InvalidArgument(EntityDatasetJob, "job id is empty")
	}
	return JobID(id), nil
}

func (i JobID) String() string {
	return string(i)
}

// Summary is the JSON serializable view of a job
type Summary map[string]string

// Job is owned by the scheduler, this service only reads it
type Job struct {
	id        JobID
	name      string
	directory string
	status    Status
	kind      Kind
	createdAt time.Time

	classification *ImageClassification
	generic        *GenericImage
}

func (j *Job) ID() JobID {
	return j.id
}

func (j *Job) Name() string {
	return j.name
}

func (j *Job) Directory() string {
	return j.directory
}

func (j *Job) Status() Status {
	return j.status
}

func (j *Job) Kind() Kind {
	return j.kind
}

func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// ImageClassification returns the details for an image classification job, nil for other kinds
func (j *Job) ImageClassification() *ImageClassification {
	return j.classification
}

// GenericImage returns the details for a generic image job, nil for other kinds
func (j *Job) GenericImage() *GenericImage {
	return j.generic
}

func (j *Job) Summary(extended bool) Summary {
	s := Summary{
		SummaryKeyID:     j.id.String(),
		SummaryKeyName:   j.name,
		SummaryKeyStatus: j.status.String(),
	}
	if extended {
		s[SummaryKeyDirectory] = j.directory
	}
	return s
}

// NewJob creates a job without variant details, it accepts any kind
func NewJob(id JobID, name, directory string, status Status, kind Kind, createdAt time.Time) (*Job, error) {
	if id == "" {
		return nil, errors.InvalidArgument(EntityDatasetJob, "job id is empty")
	}
	if name == "" {
		return nil, errors.InvalidArgument(EntityDatasetJob, "job name is empty for "+id.String())
	}
	if kind == "" {
		return nil, errors.InvalidArgument(EntityDatasetJob, "dataset job kind is empty for "+id.String())
	}
	if _, err := StatusFrom(status.String()); err != nil {
		return nil, err
	}
	return &Job{
		id:        id,
		name:      name,
		directory: directory,
		status:    status,
		kind:      kind,
		createdAt: createdAt,
	}, nil
}

func NewImageClassificationJob(id JobID, name, directory string, status Status, createdAt time.Time, details *ImageClassification) (*Job, error) {
	if details == nil {
		return nil, errors.InvalidArgument(EntityDatasetJob, "image classification details are missing")
	}
	if err := details.validate(); err != nil {
		return nil, err
	}
	job, err := NewJob(id, name, directory, status, KindImageClassification, createdAt)
	if err != nil {
		return nil, err
	}
	job.classification = details
	return job, nil
}

func NewGenericImageJob(id JobID, name, directory string, status Status, createdAt time.Time, details *GenericImage) (*Job, error) {
	if details == nil {
		return nil, errors.InvalidArgument(EntityDatasetJob, "generic image details are missing")
	}
	if err := details.validate(); err != nil {
		return nil, err
	}
	job, err := NewJob(id, name, directory, status, KindGenericImage, createdAt)
	if err != nil {
		return nil, err
	}
	job.generic = details
	return job, nil
}
