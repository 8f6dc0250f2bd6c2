package migration

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/odpf/digits/config"
	"github.com/odpf/digits/internal/store/postgres"
)

type migrateTo struct {
	configFilePath string
	version        int
}

// NewMigrateToCommand initializes command for migration to a specific version
func NewMigrateToCommand() *cobra.Command {
	to := &migrateTo{}
	cmd := &cobra.Command{
		Use:     "to",
		Short:   "Migrate the registry schema to a specific version",
		Example: "digits migration to -c config.yaml -v 1",
		RunE:    to.RunE,
	}
	cmd.Flags().StringVarP(&to.configFilePath, "config", "c", to.configFilePath, "File path for server configuration")
	cmd.Flags().IntVarP(&to.version, "version", "v", -1, "Target migration version")
	return cmd
}

func (m *migrateTo) RunE(cmd *cobra.Command, _ []string) error {
	if m.version < 0 {
		return fmt.Errorf("invalid migration version")
	}

	serverConfig, err := config.LoadServerConfig(m.configFilePath)
	if err != nil {
		return fmt.Errorf("error loading server config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Executing migration to version %d\n", m.version)
	if err := postgres.ToVersion(uint(m.version), serverConfig.Serve.DB.DSN); err != nil {
		return fmt.Errorf("error during migration: %w", err)
	}
	fmt.Fprintln(out, "Migration finished successfully")
	return nil
}
