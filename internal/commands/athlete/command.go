package athlete

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/commands/shared"
	"github.com/eddmann/strava-cli/internal/terminal"
)

// Command is the `athlete` command, fetching the authenticated athlete
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	athlete, err := clients.Strava.Athlete(ctx)
	if err != nil {
		return err
	}
	return clients.Render(athlete)
}

// StatsCommand is the `athlete stats` command
type StatsCommand struct{}

// Handler is the command handler
func (cmd *StatsCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	athleteID, err := shared.CurrentAthleteID(ctx, profile, clients)
	if err != nil {
		return err
	}

	stats, err := clients.Strava.AthleteStats(ctx, athleteID)
	if err != nil {
		return err
	}
	return clients.Render(stats)
}

// ZonesCommand is the `athlete zones` command
type ZonesCommand struct{}

// Handler is the command handler
func (cmd *ZonesCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	zones, err := clients.Strava.AthleteZones(ctx)
	if err != nil {
		return err
	}
	return clients.Render(zones)
}
