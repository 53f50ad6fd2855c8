package refresh

import (
	"context"
	"time"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/terminal"
)

// Command is the `refresh` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	tokens, err := clients.Auth.Refresh(ctx)
	if err != nil {
		return err
	}

	if tokens.ExpiresAt == 0 {
		ui.Print(terminal.NewTextLog("Access token supplied through the environment, nothing to refresh"))
		return nil
	}

	expiry := time.Unix(tokens.ExpiresAt, 0).UTC()
	ui.Print(terminal.NewTextLog("Access token valid until %s", expiry.Format(time.RFC3339)))
	return nil
}
