package dataset

import "github.com/odpf/digits/internal/errors"

const (
	KindImageClassification Kind = "image-classification"
	KindGenericImage        Kind = "generic-image"
)

// Kind tags the variant of a dataset job
type Kind string

// KindFrom keeps unrecognized kinds, the registry can hold job types
// which this service does not render
func KindFrom(kind string) (Kind, error) {
	if kind == "" {
		return "", errors.InvalidArgument(EntityDatasetJob, "dataset job kind is empty")
	}
	return Kind(kind), nil
}

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsKnown() bool {
	switch k {
	case KindImageClassification, KindGenericImage:
		return true
	}
	return false
}
