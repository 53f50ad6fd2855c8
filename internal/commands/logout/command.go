package logout

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/terminal"
)

// Command is the `logout` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	warning, err := clients.Auth.Logout(ctx)
	if err != nil {
		return err
	}
	if warning != nil {
		ui.Print(terminal.NewWarningLog("%s", warning))
	}

	ui.Print(terminal.NewTextLog("Successfully logged out"))
	return nil
}
