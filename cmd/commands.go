package cmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/cmdx"
	cli "github.com/spf13/cobra"

	"github.com/odpf/digits/cmd/dataset"
	"github.com/odpf/digits/cmd/version"
	server "github.com/odpf/digits/server/cmd"
	"github.com/odpf/digits/server/cmd/migration"
)

// New constructs the 'root' command. It houses all other sub commands
func New() *cli.Command {
	cmd := &cli.Command{
		Use: "digits <command> <subcommand> [flags]",
		Long: heredoc.Doc(`
			Digits serves the dataset jobs prepared for model training.
			Each job is shown as an html page or as a json summary.`),
		SilenceUsage: true,
		Example: heredoc.Doc(`
				$ digits serve -c config.yaml
				$ digits dataset show <job_id>
				$ digits migration rollback -n 1
			`),
		Annotations: map[string]string{
			"group:core": "true",
			"help:learn": heredoc.Doc(`
				Use 'digits <command> <subcommand> --help' for more information about a command.
			`),
			"help:feedback": heredoc.Doc(`
				Open an issue here https://github.com/odpf/digits/issues
			`),
		},
	}

	cmdx.SetHelp(cmd)

	cmd.AddCommand(
		dataset.NewDatasetCommand(),
		version.NewVersionCommand(),

		// Server related commands
		server.NewServeCommand(),
		migration.NewMigrationCommand(),
	)
	return cmd
}
