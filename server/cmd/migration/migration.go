package migration

import "github.com/spf13/cobra"

// NewMigrationCommand initializes command for migration
func NewMigrationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migration",
		Short: "Manage the dataset registry schema",
		Annotations: map[string]string{
			"group:other": "dev",
		},
	}
	cmd.AddCommand(NewRollbackCommand())
	cmd.AddCommand(NewMigrateToCommand())
	return cmd
}
