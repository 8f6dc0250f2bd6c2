package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/Masterminds/sprig/v3"

	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/internal/errors"
)

//go:embed templates
var templateFs embed.FS

const (
	layoutTemplate = "templates/layout.html"

	classificationTemplate = "templates/classification.html"
	genericTemplate        = "templates/generic.html"
)

// page is the data every dataset template receives
type page struct {
	Job     *dataset.Job
	Summary dataset.Summary
	Details interface{}
}

type engine struct {
	tmpl *template.Template
}

func newEngine(name string) (*engine, error) {
	tmpl, err := template.New("layout.html").
		Funcs(sprig.HtmlFuncMap()).
		Funcs(template.FuncMap{"totalEntries": totalEntries}).
		ParseFS(templateFs, layoutTemplate, name)
	if err != nil {
		return nil, err
	}
	return &engine{tmpl: tmpl}, nil
}

func (e *engine) render(w io.Writer, job *dataset.Job, details interface{}) error {
	data := page{
		Job:     job,
		Summary: job.Summary(true),
		Details: details,
	}
	if err := e.tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		return errors.InternalError(dataset.EntityDatasetJob, "unable to render job "+job.ID().String(), err)
	}
	return nil
}

func totalEntries(stages []dataset.StageDB) int {
	total := 0
	for _, s := range stages {
		total += s.Entries
	}
	return total
}
