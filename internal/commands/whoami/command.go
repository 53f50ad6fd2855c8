package whoami

import (
	"context"
	"strings"
	"time"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/output"
	"github.com/eddmann/strava-cli/internal/terminal"
)

// Command is the `whoami` command. It reports the local authentication
// state of the active profile without any network call.
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(ctx context.Context, profile *cli.Profile, ui terminal.UI, clients cli.Clients, args []string) error {
	creds := profile.Credentials()

	tokens, err := profile.TokenSet()
	if err != nil {
		return err
	}

	record := output.Record(
		"profile", profile.Name,
		"client_id", creds.ClientID,
		"authenticated", tokens.Authenticated(),
	)

	if tokens.Authenticated() {
		record.Set("athlete_id", tokens.AthleteID)
		record.Set("scopes", strings.Join(tokens.Scopes, ","))
		if tokens.ExpiresAt > 0 {
			record.Set("expires_at", time.Unix(tokens.ExpiresAt, 0).UTC().Format(time.RFC3339))
		}
	}

	return clients.Render(record)
}
