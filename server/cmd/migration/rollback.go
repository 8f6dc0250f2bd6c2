package migration

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odpf/digits/config"
	"github.com/odpf/digits/internal/store/postgres"
)

type rollbackCommand struct {
	configFilePath string
	count          int
}

// NewRollbackCommand initializes command for migration rollback
func NewRollbackCommand() *cobra.Command {
	rollback := &rollbackCommand{}
	cmd := &cobra.Command{
		Use:     "rollback",
		Short:   "Rollback the most recent registry migrations",
		Example: "digits migration rollback -c config.yaml -n 1",
		RunE:    rollback.RunE,
	}
	cmd.Flags().StringVarP(&rollback.configFilePath, "config", "c", rollback.configFilePath, "File path for server configuration")
	cmd.Flags().IntVarP(&rollback.count, "count", "n", 1, "Number of migrations to rollback")
	return cmd
}

func (r *rollbackCommand) RunE(cmd *cobra.Command, _ []string) error {
	serverConfig, err := config.LoadServerConfig(r.configFilePath)
	if err != nil {
		return fmt.Errorf("error loading server config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Executing rollback for %d migrations\n", r.count)
	if err := postgres.Rollback(serverConfig.Serve.DB.DSN, r.count); err != nil {
		return fmt.Errorf("error rolling back migration: %w", err)
	}
	fmt.Fprintln(out, "Rollback finished successfully")
	return nil
}
