// Package commands defines the command surface of the CLI
package commands

import (
	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/commands/activities"
	"github.com/eddmann/strava-cli/internal/commands/athlete"
	"github.com/eddmann/strava-cli/internal/commands/clubs"
	"github.com/eddmann/strava-cli/internal/commands/efforts"
	"github.com/eddmann/strava-cli/internal/commands/gear"
	"github.com/eddmann/strava-cli/internal/commands/login"
	"github.com/eddmann/strava-cli/internal/commands/logout"
	"github.com/eddmann/strava-cli/internal/commands/refresh"
	"github.com/eddmann/strava-cli/internal/commands/routes"
	"github.com/eddmann/strava-cli/internal/commands/segments"
	"github.com/eddmann/strava-cli/internal/commands/whoami"

	"github.com/spf13/cobra"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log the CLI into Strava using the OAuth authorization flow",
		Help: `Starts a browser-based authorization against your Strava account. You will be
prompted for your API application's Client ID and Client Secret the first time;
they are stored in the CLI config for subsequent logins.`,
	}

	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Log the CLI out of Strava",
		Help:        "Revokes the stored access token and removes it from the CLI config",
	}

	Refresh = cli.CommandDefinition{
		Command:     &refresh.Command{},
		Use:         "refresh",
		Description: "Refresh the stored access token if it is near expiry",
		Help:        "Ensures the stored access token is valid, rotating it when necessary",
	}

	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the authentication state of the active profile",
	}

	Athlete = cli.CommandDefinition{
		Command:     &athlete.Command{},
		Use:         "athlete",
		Description: "Fetch the authenticated athlete",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &athlete.StatsCommand{},
				Use:         "stats",
				Description: "Fetch the authenticated athlete's activity totals",
			},
			{
				Command:     &athlete.ZonesCommand{},
				Use:         "zones",
				Description: "Fetch the authenticated athlete's heart rate and power zones",
			},
		},
	}

	Activities = cli.CommandDefinition{
		Use:         "activities",
		Description: "Access the authenticated athlete's activities",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &activities.ListCommand{},
				Use:         "list",
				Description: "List the authenticated athlete's activities",
			},
			{
				Command:     &activities.GetCommand{},
				Use:         "get <activity-id>",
				Description: "Fetch a single activity",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &activities.LapsCommand{},
				Use:         "laps <activity-id>",
				Description: "List the laps of an activity",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &activities.ZonesCommand{},
				Use:         "zones <activity-id>",
				Description: "List the zone distributions of an activity",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &activities.StreamsCommand{},
				Use:         "streams <activity-id>",
				Description: "Fetch the raw data streams of an activity",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &activities.CommentsCommand{},
				Use:         "comments <activity-id>",
				Description: "List the comments on an activity",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &activities.KudosCommand{},
				Use:         "kudos <activity-id>",
				Description: "List the athletes who gave kudos on an activity",
				Args:        cobra.ExactArgs(1),
			},
		},
	}

	Segments = cli.CommandDefinition{
		Use:         "segments",
		Description: "Access segments",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &segments.GetCommand{},
				Use:         "get <segment-id>",
				Description: "Fetch a single segment",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &segments.StarredCommand{},
				Use:         "starred",
				Description: "List the authenticated athlete's starred segments",
			},
			{
				Command:     &segments.ExploreCommand{},
				Use:         "explore",
				Description: "Find popular segments within a geographic area",
			},
			{
				Command:     &segments.StarCommand{Starred: true},
				Use:         "star <segment-id>",
				Description: "Star a segment for the authenticated athlete",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &segments.StarCommand{Starred: false},
				Use:         "unstar <segment-id>",
				Description: "Unstar a segment for the authenticated athlete",
				Args:        cobra.ExactArgs(1),
			},
		},
	}

	Efforts = cli.CommandDefinition{
		Use:         "efforts",
		Description: "Access the authenticated athlete's segment efforts",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &efforts.GetCommand{},
				Use:         "get <effort-id>",
				Description: "Fetch a single segment effort",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &efforts.ListCommand{},
				Use:         "list <segment-id>",
				Description: "List the authenticated athlete's efforts on a segment",
				Args:        cobra.ExactArgs(1),
			},
		},
	}

	Routes = cli.CommandDefinition{
		Use:         "routes",
		Description: "Access the authenticated athlete's routes",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &routes.ListCommand{},
				Use:         "list",
				Description: "List the authenticated athlete's routes",
			},
			{
				Command:     &routes.GetCommand{},
				Use:         "get <route-id>",
				Description: "Fetch a single route",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &routes.StreamsCommand{},
				Use:         "streams <route-id>",
				Description: "Fetch the raw data streams of a route",
				Args:        cobra.ExactArgs(1),
			},
		},
	}

	Clubs = cli.CommandDefinition{
		Use:         "clubs",
		Description: "Access clubs",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &clubs.ListCommand{},
				Use:         "list",
				Description: "List the authenticated athlete's clubs",
			},
			{
				Command:     &clubs.GetCommand{},
				Use:         "get <club-id>",
				Description: "Fetch a single club",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &clubs.MembersCommand{},
				Use:         "members <club-id>",
				Description: "List the members of a club",
				Args:        cobra.ExactArgs(1),
			},
			{
				Command:     &clubs.ActivitiesCommand{},
				Use:         "activities <club-id>",
				Description: "List the recent activities of a club",
				Args:        cobra.ExactArgs(1),
			},
		},
	}

	Gear = cli.CommandDefinition{
		Use:         "gear",
		Description: "Access gear",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &gear.Command{},
				Use:         "get <gear-id>",
				Description: "Fetch a single piece of gear",
				Args:        cobra.ExactArgs(1),
			},
		},
	}
)
