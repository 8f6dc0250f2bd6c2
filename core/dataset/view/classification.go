package view

import (
	"io"

	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/internal/errors"
)

// ClassificationRenderer shows an image classification dataset
type ClassificationRenderer struct {
	engine *engine
}

func (r *ClassificationRenderer) Render(w io.Writer, job *dataset.Job) error {
	details := job.ImageClassification()
	if job.Kind() != dataset.KindImageClassification || details == nil {
		return errors.InvalidArgument(dataset.EntityDatasetJob, "job "+job.ID().String()+" is not an image classification dataset")
	}
	return r.engine.render(w, job, details)
}

func NewClassificationRenderer() (*ClassificationRenderer, error) {
	e, err := newEngine(classificationTemplate)
	if err != nil {
		return nil, err
	}
	return &ClassificationRenderer{engine: e}, nil
}
