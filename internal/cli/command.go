package cli

import (
	"context"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cloud/strava"
	"github.com/eddmann/strava-cli/internal/output"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RenderFunc is the composed output pipeline handed to each command: the
// value it is given flows through field projection and the configured
// serializer onto standard output
type RenderFunc func(v output.Value) error

// AuthClient manages the token lifecycle of the active profile
type AuthClient interface {
	Login(ctx context.Context, ui terminal.UI) (auth.TokenSet, error)
	Logout(ctx context.Context) (warning error, err error)
	Refresh(ctx context.Context) (auth.TokenSet, error)
}

// Clients holds the service dependencies commands execute against
type Clients struct {
	Strava strava.Client
	Auth   AuthClient
	Render RenderFunc
}

// Command is an executable CLI command
// This interface maps 1:1 to Cobra's Command.RunE phase
//
// Optionally, a Command may implement CommandFlagger to register local
// flags to be parsed ahead of its Handler running
type Command interface {
	Handler(ctx context.Context, profile *Profile, ui terminal.UI, clients Clients, args []string) error
}

// CommandFlagger is a hook for commands to register local flags to be parsed
type CommandFlagger interface {
	Flags(fs *pflag.FlagSet)
}

// CommandDefinition is a command's definition that the CommandFactory
// can build a *cobra.Command from
type CommandDefinition struct {
	// Command is the command's implementation
	Command Command

	// SubCommands are the command's sub commands
	SubCommands []CommandDefinition

	// Use defines how the command is used
	// This value maps 1:1 to Cobra's `Use` property
	Use string

	// Description is the short command description shown in the 'help' output
	Description string

	// Help is the long message shown in the 'help <this-command>' output
	Help string

	// Aliases is the list of supported aliases for the command
	Aliases []string

	// Args validates the command's positional arguments
	Args cobra.PositionalArgs
}
