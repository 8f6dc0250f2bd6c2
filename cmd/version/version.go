package version

import (
	"fmt"

	"github.com/odpf/salt/log"
	"github.com/odpf/salt/version"
	"github.com/spf13/cobra"

	"github.com/odpf/digits/cmd/logger"
	"github.com/odpf/digits/config"
)

const githubRepo = "odpf/digits"

type versionCommand struct {
	logger log.Logger

	checkUpdate bool
}

// NewVersionCommand initializes command to get version
func NewVersionCommand() *cobra.Command {
	v := &versionCommand{
		logger: logger.NewDefaultLogger(),
	}

	cmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the client version information",
		Example: "digits version [--check-update]",
		RunE:    v.RunE,
	}
	cmd.Flags().BoolVar(&v.checkUpdate, "check-update", v.checkUpdate, "Check whether a newer release exists")
	return cmd
}

func (v *versionCommand) RunE(_ *cobra.Command, _ []string) error {
	v.logger.Info(fmt.Sprintf("Client: %s-%s", config.BuildVersion, config.BuildCommit))
	if config.BuildDate != "" {
		v.logger.Info(fmt.Sprintf("Built: %s", config.BuildDate))
	}

	if v.checkUpdate {
		if updateNotice := version.UpdateNotice(config.BuildVersion, githubRepo); updateNotice != "" {
			v.logger.Info(updateNotice)
		}
	}
	return nil
}
