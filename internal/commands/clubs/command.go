package clubs

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/commands/shared"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// set of supported `clubs` command flags
const (
	flagLimit      = "limit"
	flagLimitUsage = "specify the number of results per page"
)

// ListCommand is the `clubs list` command, listing the authenticated
// athlete's clubs
type ListCommand struct{}

// Handler is the command handler
func (cmd *ListCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	clubs, err := clients.Strava.AthleteClubs(ctx)
	if err != nil {
		return err
	}
	return clients.Render(clubs)
}

// GetCommand is the `clubs get` command
type GetCommand struct{}

// Handler is the command handler
func (cmd *GetCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	clubID, err := shared.ParseID("club", args[0])
	if err != nil {
		return err
	}

	club, err := clients.Strava.Club(ctx, clubID)
	if err != nil {
		return err
	}
	return clients.Render(club)
}

// MembersCommand is the `clubs members` command
type MembersCommand struct {
	limit int
}

// Flags is the command flags
func (cmd *MembersCommand) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.limit, flagLimit, 0, flagLimitUsage)
}

// Handler is the command handler
func (cmd *MembersCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	clubID, err := shared.ParseID("club", args[0])
	if err != nil {
		return err
	}

	limit := cmd.limit
	if limit == 0 {
		limit = profile.DefaultLimit()
	}

	members, err := clients.Strava.ClubMembers(ctx, clubID, limit)
	if err != nil {
		return err
	}
	return clients.Render(members)
}

// ActivitiesCommand is the `clubs activities` command
type ActivitiesCommand struct {
	limit int
}

// Flags is the command flags
func (cmd *ActivitiesCommand) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.limit, flagLimit, 0, flagLimitUsage)
}

// Handler is the command handler
func (cmd *ActivitiesCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	clubID, err := shared.ParseID("club", args[0])
	if err != nil {
		return err
	}

	limit := cmd.limit
	if limit == 0 {
		limit = profile.DefaultLimit()
	}

	activities, err := clients.Strava.ClubActivities(ctx, clubID, limit)
	if err != nil {
		return err
	}
	return clients.Render(activities)
}
