package view

import (
	"io"

	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/internal/errors"
)

// GenericRenderer shows a generic image dataset
type GenericRenderer struct {
	engine *engine
}

func (r *GenericRenderer) Render(w io.Writer, job *dataset.Job) error {
	details := job.GenericImage()
	if job.Kind() != dataset.KindGenericImage || details == nil {
		return errors.InvalidArgument(dataset.EntityDatasetJob, "job "+job.ID().String()+" is not a generic image dataset")
	}
	return r.engine.render(w, job, details)
}

func NewGenericRenderer() (*GenericRenderer, error) {
	e, err := newEngine(genericTemplate)
	if err != nil {
		return nil, err
	}
	return &GenericRenderer{engine: e}, nil
}
