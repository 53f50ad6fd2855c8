package routes

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/commands/shared"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// set of supported `routes` command flags
const (
	flagLimit      = "limit"
	flagLimitUsage = "specify the number of routes per page"
)

// ListCommand is the `routes list` command, listing the authenticated
// athlete's routes
type ListCommand struct {
	limit int
}

// Flags is the command flags
func (cmd *ListCommand) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.limit, flagLimit, 0, flagLimitUsage)
}

// Handler is the command handler
func (cmd *ListCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	athleteID, err := shared.CurrentAthleteID(ctx, profile, clients)
	if err != nil {
		return err
	}

	limit := cmd.limit
	if limit == 0 {
		limit = profile.DefaultLimit()
	}

	routes, err := clients.Strava.Routes(ctx, athleteID, limit)
	if err != nil {
		return err
	}
	return clients.Render(routes)
}

// GetCommand is the `routes get` command
type GetCommand struct{}

// Handler is the command handler
func (cmd *GetCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	routeID, err := shared.ParseID("route", args[0])
	if err != nil {
		return err
	}

	route, err := clients.Strava.Route(ctx, routeID)
	if err != nil {
		return err
	}
	return clients.Render(route)
}

// StreamsCommand is the `routes streams` command
type StreamsCommand struct{}

// Handler is the command handler
func (cmd *StreamsCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	routeID, err := shared.ParseID("route", args[0])
	if err != nil {
		return err
	}

	streams, err := clients.Strava.RouteStreams(ctx, routeID)
	if err != nil {
		return err
	}
	return clients.Render(streams)
}
