package dataset

import (
	"github.com/spf13/cobra"

	"github.com/odpf/digits/cmd/logger"
)

// NewDatasetCommand initializes command for dataset jobs
func NewDatasetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataset",
		Short: "Inspect dataset jobs known to a digits server",
		Annotations: map[string]string{
			"group:core": "true",
		},
	}
	cmd.AddCommand(NewShowCommand(logger.NewDefaultLogger()))
	return cmd
}
