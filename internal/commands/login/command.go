package login

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// set of supported `login` command flags
const (
	flagClientID      = "client-id"
	flagClientIDUsage = "specify the Strava API application Client ID"

	flagClientSecret      = "client-secret"
	flagClientSecretUsage = "specify the Strava API application Client Secret"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.ClientID, flagClientID, "", flagClientIDUsage)
	fs.StringVar(&cmd.inputs.ClientSecret, flagClientSecret, "", flagClientSecretUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	if err := cmd.inputs.Resolve(profile, ui); err != nil {
		return err
	}

	// staged on the profile here, persisted by the manager's post-exchange save
	profile.SetCredentials(cmd.inputs.credentials())

	tokens, err := clients.Auth.Login(ctx, ui)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully logged in as athlete %d", tokens.AthleteID))
	return nil
}
