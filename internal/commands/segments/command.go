package segments

import (
	"context"
	"errors"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/cloud/strava"
	"github.com/eddmann/strava-cli/internal/commands/shared"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// set of supported `segments` command flags
const (
	flagLimit      = "limit"
	flagLimitUsage = "specify the number of segments per page"

	flagBounds      = "bounds"
	flagBoundsUsage = "search area as sw_lat,sw_lng,ne_lat,ne_lng"

	flagActivityType      = "activity-type"
	flagActivityTypeUsage = "restrict results to riding or running segments"

	flagMinCategory      = "min-cat"
	flagMinCategoryUsage = "minimum climb category to include"

	flagMaxCategory      = "max-cat"
	flagMaxCategoryUsage = "maximum climb category to include"
)

// GetCommand is the `segments get` command
type GetCommand struct{}

// Handler is the command handler
func (cmd *GetCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	segmentID, err := shared.ParseID("segment", args[0])
	if err != nil {
		return err
	}

	segment, err := clients.Strava.Segment(ctx, segmentID)
	if err != nil {
		return err
	}
	return clients.Render(segment)
}

// StarredCommand is the `segments starred` command
type StarredCommand struct {
	limit int
}

// Flags is the command flags
func (cmd *StarredCommand) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.limit, flagLimit, 0, flagLimitUsage)
}

// Handler is the command handler
func (cmd *StarredCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	limit := cmd.limit
	if limit == 0 {
		limit = profile.DefaultLimit()
	}

	segments, err := clients.Strava.StarredSegments(ctx, limit)
	if err != nil {
		return err
	}
	return clients.Render(segments)
}

// ExploreCommand is the `segments explore` command
type ExploreCommand struct {
	bounds       string
	activityType string
	minCategory  int
	maxCategory  int
}

// Flags is the command flags
func (cmd *ExploreCommand) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.bounds, flagBounds, "", flagBoundsUsage)
	fs.StringVar(&cmd.activityType, flagActivityType, "", flagActivityTypeUsage)
	fs.IntVar(&cmd.minCategory, flagMinCategory, 0, flagMinCategoryUsage)
	fs.IntVar(&cmd.maxCategory, flagMaxCategory, 0, flagMaxCategoryUsage)
}

// Handler is the command handler
func (cmd *ExploreCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	if cmd.bounds == "" {
		return errors.New("a --bounds search area is required")
	}

	segments, err := clients.Strava.ExploreSegments(ctx, strava.ExploreOptions{
		Bounds:       cmd.bounds,
		ActivityType: cmd.activityType,
		MinCategory:  cmd.minCategory,
		MaxCategory:  cmd.maxCategory,
	})
	if err != nil {
		return err
	}
	return clients.Render(segments)
}

// StarCommand is the `segments star` and `segments unstar` command,
// with Starred selecting which of the two it performs
type StarCommand struct {
	Starred bool
}

// Handler is the command handler
func (cmd *StarCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	segmentID, err := shared.ParseID("segment", args[0])
	if err != nil {
		return err
	}

	segment, err := clients.Strava.StarSegment(ctx, segmentID, cmd.Starred)
	if err != nil {
		return err
	}
	return clients.Render(segment)
}
