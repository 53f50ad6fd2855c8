package efforts

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/cloud/strava"
	"github.com/eddmann/strava-cli/internal/commands/shared"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// set of supported `efforts` command flags
const (
	flagStartDate      = "start-date"
	flagStartDateUsage = "only include efforts after the provided ISO 8601 local date"

	flagEndDate      = "end-date"
	flagEndDateUsage = "only include efforts before the provided ISO 8601 local date"

	flagLimit      = "limit"
	flagLimitUsage = "specify the number of efforts per page"
)

// GetCommand is the `efforts get` command
type GetCommand struct{}

// Handler is the command handler
func (cmd *GetCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	effortID, err := shared.ParseID("effort", args[0])
	if err != nil {
		return err
	}

	effort, err := clients.Strava.SegmentEffort(ctx, effortID)
	if err != nil {
		return err
	}
	return clients.Render(effort)
}

// ListCommand is the `efforts list` command, listing the authenticated
// athlete's efforts on a segment
type ListCommand struct {
	startDate string
	endDate   string
	limit     int
}

// Flags is the command flags
func (cmd *ListCommand) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.startDate, flagStartDate, "", flagStartDateUsage)
	fs.StringVar(&cmd.endDate, flagEndDate, "", flagEndDateUsage)
	fs.IntVar(&cmd.limit, flagLimit, 0, flagLimitUsage)
}

// Handler is the command handler
func (cmd *ListCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	segmentID, err := shared.ParseID("segment", args[0])
	if err != nil {
		return err
	}

	limit := cmd.limit
	if limit == 0 {
		limit = profile.DefaultLimit()
	}

	efforts, err := clients.Strava.SegmentEfforts(ctx, segmentID, strava.EffortListOptions{
		StartDate: cmd.startDate,
		EndDate:   cmd.endDate,
		PerPage:   limit,
	})
	if err != nil {
		return err
	}
	return clients.Render(efforts)
}
