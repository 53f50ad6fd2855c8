package gear

import (
	"context"
	"fmt"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/terminal"
)

// Command is the `gear get` command. Gear identifiers are opaque strings
// such as "b105763" for bikes and "g10043849" for shoes.
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	gearID := args[0]
	if gearID == "" {
		return fmt.Errorf("invalid gear id: %q", gearID)
	}

	gear, err := clients.Strava.Gear(ctx, gearID)
	if err != nil {
		return err
	}
	return clients.Render(gear)
}
