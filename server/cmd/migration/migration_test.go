package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odpf/digits/server/cmd/migration"
)

func TestMigrationCommand(t *testing.T) {
	t.Run("registers rollback and to sub commands", func(t *testing.T) {
		cmd := migration.NewMigrationCommand()

		var names []string
		for _, c := range cmd.Commands() {
			names = append(names, c.Name())
		}
		assert.ElementsMatch(t, []string{"rollback", "to"}, names)
	})
	t.Run("returns error when target version is not given", func(t *testing.T) {
		cmd := migration.NewMigrateToCommand()
		cmd.SetArgs([]string{})
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true

		err := cmd.Execute()
		assert.EqualError(t, err, "invalid migration version")
	})
}
