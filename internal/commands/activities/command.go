package activities

import (
	"context"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/cloud/strava"
	"github.com/eddmann/strava-cli/internal/commands/shared"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// set of supported `activities` command flags
const (
	flagBefore      = "before"
	flagBeforeUsage = "only include activities started before the provided time"

	flagAfter      = "after"
	flagAfterUsage = "only include activities started after the provided time"

	flagPage      = "page"
	flagPageUsage = "specify the page of results to fetch"

	flagLimit      = "limit"
	flagLimitUsage = "specify the number of activities per page"

	flagIncludeAllEfforts      = "include-all-efforts"
	flagIncludeAllEffortsUsage = "include all segment efforts in the activity detail"

	flagKeys      = "keys"
	flagKeysUsage = "only include the provided stream types (e.g. time,distance,heartrate)"
)

// ListCommand is the `activities list` command
type ListCommand struct {
	before string
	after  string
	page   int
	limit  int
}

// Flags is the command flags
func (cmd *ListCommand) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.before, flagBefore, "", flagBeforeUsage)
	fs.StringVar(&cmd.after, flagAfter, "", flagAfterUsage)
	fs.IntVar(&cmd.page, flagPage, 0, flagPageUsage)
	fs.IntVar(&cmd.limit, flagLimit, 0, flagLimitUsage)
}

// Handler is the command handler
func (cmd *ListCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	before, err := shared.ParseTime(flagBefore, cmd.before)
	if err != nil {
		return err
	}
	after, err := shared.ParseTime(flagAfter, cmd.after)
	if err != nil {
		return err
	}

	limit := cmd.limit
	if limit == 0 {
		limit = profile.DefaultLimit()
	}

	activities, err := clients.Strava.Activities(ctx, strava.ActivityListOptions{
		Before:  before,
		After:   after,
		Page:    cmd.page,
		PerPage: limit,
	})
	if err != nil {
		return err
	}
	return clients.Render(activities)
}

// GetCommand is the `activities get` command
type GetCommand struct {
	includeAllEfforts bool
}

// Flags is the command flags
func (cmd *GetCommand) Flags(fs *pflag.FlagSet) {
	fs.BoolVar(&cmd.includeAllEfforts, flagIncludeAllEfforts, false, flagIncludeAllEffortsUsage)
}

// Handler is the command handler
func (cmd *GetCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	activityID, err := shared.ParseID("activity", args[0])
	if err != nil {
		return err
	}

	activity, err := clients.Strava.Activity(ctx, activityID, cmd.includeAllEfforts)
	if err != nil {
		return err
	}
	return clients.Render(activity)
}

// LapsCommand is the `activities laps` command
type LapsCommand struct{}

// Handler is the command handler
func (cmd *LapsCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	activityID, err := shared.ParseID("activity", args[0])
	if err != nil {
		return err
	}

	laps, err := clients.Strava.ActivityLaps(ctx, activityID)
	if err != nil {
		return err
	}
	return clients.Render(laps)
}

// ZonesCommand is the `activities zones` command
type ZonesCommand struct{}

// Handler is the command handler
func (cmd *ZonesCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	activityID, err := shared.ParseID("activity", args[0])
	if err != nil {
		return err
	}

	zones, err := clients.Strava.ActivityZones(ctx, activityID)
	if err != nil {
		return err
	}
	return clients.Render(zones)
}

// StreamsCommand is the `activities streams` command
type StreamsCommand struct {
	keys []string
}

// Flags is the command flags
func (cmd *StreamsCommand) Flags(fs *pflag.FlagSet) {
	fs.StringSliceVar(&cmd.keys, flagKeys, nil, flagKeysUsage)
}

// Handler is the command handler
func (cmd *StreamsCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	activityID, err := shared.ParseID("activity", args[0])
	if err != nil {
		return err
	}

	streams, err := clients.Strava.ActivityStreams(ctx, activityID, cmd.keys)
	if err != nil {
		return err
	}
	return clients.Render(streams)
}

// CommentsCommand is the `activities comments` command
type CommentsCommand struct{}

// Handler is the command handler
func (cmd *CommentsCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	activityID, err := shared.ParseID("activity", args[0])
	if err != nil {
		return err
	}

	comments, err := clients.Strava.ActivityComments(ctx, activityID)
	if err != nil {
		return err
	}
	return clients.Render(comments)
}

// KudosCommand is the `activities kudos` command
type KudosCommand struct{}

// Handler is the command handler
func (cmd *KudosCommand) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	activityID, err := shared.ParseID("activity", args[0])
	if err != nil {
		return err
	}

	kudos, err := clients.Strava.ActivityKudos(ctx, activityID)
	if err != nil {
		return err
	}
	return clients.Render(kudos)
}
