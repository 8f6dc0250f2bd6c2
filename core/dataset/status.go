package dataset

import (
	"strings"

	"github.com/odpf/digits/internal/errors"
)

const (
	StatusInitialized Status = "Initialized"
	StatusWaiting     Status = "Waiting"
	StatusRunning     Status = "Running"
	StatusDone        Status = "Done"
	StatusAbort       Status = "Abort"
	StatusError       Status = "Error"
)

type Status string

func StatusFrom(status string) (Status, error) {
	switch strings.ToLower(status) {
	case strings.ToLower(string(StatusInitialized)):
		return StatusInitialized, nil
	case strings.ToLower(string(StatusWaiting)):
		return StatusWaiting, nil
	case strings.ToLower(string(StatusRunning)):
		return StatusRunning, nil
	case strings.ToLower(string(StatusDone)):
		return StatusDone, nil
	case strings.ToLower(string(StatusAbort)):
		return StatusAbort, nil
	case strings.ToLower(string(StatusError)):
		return StatusError, nil
	default:
		return "", errors.InvalidArgument(EntityDatasetJob, "invalid status for dataset job "+status)
	}
}

func (s Status) String() string {
	return string(s)
}

// IsRunning is true while the scheduler has not finished with the job
func (s Status) IsRunning() bool {
	return s == StatusInitialized || s == StatusWaiting || s == StatusRunning
}
