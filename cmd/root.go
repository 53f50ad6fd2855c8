package cmd

import (
	"fmt"
	"os"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to query your Strava activities, segments and clubs",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory := cli.NewCommandFactory()

	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		return factory.Setup()
	}

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Login))
	cmd.AddCommand(factory.Build(commands.Logout))
	cmd.AddCommand(factory.Build(commands.Refresh))
	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Athlete))
	cmd.AddCommand(factory.Build(commands.Activities))
	cmd.AddCommand(factory.Build(commands.Segments))
	cmd.AddCommand(factory.Build(commands.Efforts))
	cmd.AddCommand(factory.Build(commands.Routes))
	cmd.AddCommand(factory.Build(commands.Clubs))
	cmd.AddCommand(factory.Build(commands.Gear))

	os.Exit(factory.Run(cmd))
}
