package v1beta1

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/odpf/salt/log"

	"github.com/odpf/digits/core/dataset"
	"github.com/odpf/digits/internal/errors"
	"github.com/odpf/digits/internal/routing"
	"github.com/odpf/digits/internal/telemetry"
)

const (
	Namespace = "/datasets/"

	jobIDVar = "job_id"

	metricShowRequests = "dataset_show_requests_total"

	outcomeJSON       = "json"
	outcomeHTML       = "html"
	outcomeNotFound   = "not_found"
	outcomeBadRequest = "bad_request"
	outcomeError      = "error"

	kindUnresolved   = "unresolved"
	kindUnrecognized = "unrecognized"
)

type JobService interface {
	GetJob(context.Context, dataset.JobID) (*dataset.Job, error)
}

type Renderer interface {
	Render(io.Writer, *dataset.Job) error
}

// Renderers maps every recognized kind to the view showing it
type Renderers map[dataset.Kind]Renderer

type DatasetHandler struct {
	l          log.Logger
	jobService JobService
	renderers  Renderers
}

// RegisterRoutes adds the show routes, the .json route is added first so the
// suffix is never taken as part of the job id
func (h *DatasetHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc(Namespace+"{"+jobIDVar+"}.json", h.Show).Methods(http.MethodGet)
	r.HandleFunc(Namespace+"{"+jobIDVar+"}", h.Show).Methods(http.MethodGet)
}

// Show writes the JSON summary of a dataset job when requested, or the
// view of the job kind otherwise
func (h *DatasetHandler) Show(w http.ResponseWriter, r *http.Request) {
	wantsJSON := routing.WantsJSON(r)

	jobID, err := dataset.JobIDFrom(mux.Vars(r)[jobIDVar])
	if err != nil {
		h.writeError(w, wantsJSON, kindUnresolved, err, "invalid job id")
		return
	}

	job, err := h.jobService.GetJob(r.Context(), jobID)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrNotFound) {
			h.writeError(w, wantsJSON, kindUnresolved, errors.NotFound(dataset.EntityDatasetJob, "job not found"), "job not found")
			return
		}
		h.writeError(w, wantsJSON, kindUnresolved, err, "unable to get job "+jobID.String())
		return
	}

	if wantsJSON {
		if err := writeJSON(w, http.StatusOK, job.Summary(true)); err != nil {
			h.l.Warn("unable to write job summary", "job_id", jobID.String(), "error", err)
		}
		countRequest(kindLabel(job.Kind()), outcomeJSON)
		return
	}

	renderer, ok := h.renderers[job.Kind()]
	if !ok {
		h.writeError(w, wantsJSON, kindLabel(job.Kind()),
			errors.InvalidArgument(dataset.EntityDatasetJob, "invalid job type "+job.Kind().String()), "invalid job type")
		return
	}

	buf := &bytes.Buffer{}
	if err := renderer.Render(buf, job); err != nil {
		h.writeError(w, wantsJSON, kindLabel(job.Kind()), errors.InternalError(dataset.EntityDatasetJob, "unable to render job", err),
			"unable to render job "+jobID.String())
		return
	}
	w.Header().Set("Content-Type", routing.MimeHTML+"; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.l.Warn("unable to write job view", "job_id", jobID.String(), "error", err)
	}
	countRequest(kindLabel(job.Kind()), outcomeHTML)
}

func (h *DatasetHandler) writeError(w http.ResponseWriter, wantsJSON bool, kind string, err error, msg string) {
	status := errors.MapToHTTPStatus(err)
	switch status {
	case http.StatusNotFound:
		countRequest(kind, outcomeNotFound)
	case http.StatusBadRequest:
		countRequest(kind, outcomeBadRequest)
	default:
		h.l.Error(msg, "error", err)
		countRequest(kind, outcomeError)
	}

	if wantsJSON {
		if err := writeJSON(w, status, errorResponse{Message: msg}); err != nil {
			h.l.Warn("unable to write error response", "error", err)
		}
		return
	}
	http.Error(w, msg, status)
}

// kindLabel keeps the kind label bounded, stored kinds outside the known set share one value
func kindLabel(kind dataset.Kind) string {
	if !kind.IsKnown() {
		return kindUnrecognized
	}
	return kind.String()
}

func countRequest(kind, outcome string) {
	telemetry.NewCounter(metricShowRequests, map[string]string{
		"kind":    kind,
		"outcome": outcome,
	}).Inc()
}

func NewDatasetHandler(l log.Logger, jobService JobService, renderers Renderers) *DatasetHandler {
	return &DatasetHandler{
		l:          l,
		jobService: jobService,
		renderers:  renderers,
	}
}
