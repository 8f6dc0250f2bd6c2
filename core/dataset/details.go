package dataset

import (
	"fmt"

	"github.com/odpf/digits/internal/errors"
)

const (
	StageTrain = "train"
	StageVal   = "val"
	StageTest  = "test"
)

// StageDB describes the database created for one stage of a dataset
type StageDB struct {
	Stage   string `json:"stage"`
	Backend string `json:"backend"`
	Path    string `json:"path"`
	Entries int    `json:"entries"`
}

type ImageDims struct {
	Height   int `json:"height"`
	Width    int `json:"width"`
	Channels int `json:"channels"`
}

func (d ImageDims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Height, d.Width, d.Channels)
}

type ImageClassification struct {
	ImageDims   ImageDims `json:"image_dims"`
	ResizeMode  string    `json:"resize_mode"`
	Encoding    string    `json:"encoding"`
	Compression string    `json:"compression"`
	LabelsFile  string    `json:"labels_file"`
	Labels      []string  `json:"labels"`
	Stages      []StageDB `json:"stages"`
}

func (c *ImageClassification) validate() error {
	if c.ImageDims.Height <= 0 || c.ImageDims.Width <= 0 {
		return errors.InvalidArgument(EntityDatasetJob, "image dimensions should be positive")
	}
	switch c.ImageDims.Channels {
	case 1, 3:
	default:
		return errors.InvalidArgument(EntityDatasetJob, fmt.Sprintf("invalid number of channels %d", c.ImageDims.Channels))
	}
	return validateStages(c.Stages)
}

type GenericImage struct {
	FeatureDims ImageDims `json:"feature_dims"`
	LabelDims   []int     `json:"label_dims"`
	MeanFile    string    `json:"mean_file"`
	Stages      []StageDB `json:"stages"`
}

func (g *GenericImage) validate() error {
	return validateStages(g.Stages)
}

func validateStages(stages []StageDB) error {
	seen := make(map[string]bool, len(stages))
	for _, s := range stages {
		switch s.Stage {
		case StageTrain, StageVal, StageTest:
		default:
			return errors.InvalidArgument(EntityDatasetJob, "invalid stage "+s.Stage)
		}
		if seen[s.Stage] {
			return errors.InvalidArgument(EntityDatasetJob, "duplicate stage "+s.Stage)
		}
		if s.Entries < 0 {
			return errors.InvalidArgument(EntityDatasetJob, "negative entry count for stage "+s.Stage)
		}
		seen[s.Stage] = true
	}
	return nil
}
