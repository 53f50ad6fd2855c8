package login

import (
	"context"
	"strings"
	"testing"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/terminal"
	"github.com/eddmann/strava-cli/internal/utils/test/assert"
	"github.com/eddmann/strava-cli/internal/utils/test/mock"
	"github.com/eddmann/strava-cli/internal/utils/test/mock/authmock"

	"github.com/spf13/afero"
)

func TestLoginHandler(t *testing.T) {
	t.Run("should stage credentials and leave the single config save to the token manager", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		path := "/home/test/.config/strava-cli/config.yaml"
		profile := cli.NewProfile(cli.DefaultProfile, path)
		profile.SetFs(fs)
		assert.Nil(t, profile.Load())

		creds := auth.Credentials{ClientID: "flag-id", ClientSecret: "flag-secret"}

		var loginCalled bool
		clients := cli.Clients{Auth: authmock.AuthClient{LoginFn: func(ctx context.Context, ui terminal.UI) (auth.TokenSet, error) {
			loginCalled = true
			// credentials must already be staged when the grant starts
			assert.Equal(t, creds, profile.Credentials())
			return auth.TokenSet{AccessToken: "access123", AthleteID: 789}, nil
		}}}

		out, ui := mock.NewUI()
		cmd := &Command{inputs: inputs{ClientID: creds.ClientID, ClientSecret: creds.ClientSecret}}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, clients, nil))

		assert.True(t, loginCalled, "expected the token manager login to run")
		assert.True(t, strings.Contains(out.String(), "Successfully logged in as athlete 789"),
			"expected a login confirmation, got: %s", out.String())

		// the handler itself must not write the config; the manager owns the
		// one save that persists credentials and tokens together
		exists, err := afero.Exists(fs, path)
		assert.Nil(t, err)
		assert.False(t, exists, "expected no config write from the handler")
	})

	t.Run("should not touch the config when the grant fails", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		path := "/home/test/.config/strava-cli/config.yaml"
		profile := cli.NewProfile(cli.DefaultProfile, path)
		profile.SetFs(fs)
		assert.Nil(t, profile.Load())

		clients := cli.Clients{Auth: authmock.AuthClient{LoginFn: func(ctx context.Context, ui terminal.UI) (auth.TokenSet, error) {
			return auth.TokenSet{}, context.DeadlineExceeded
		}}}

		_, ui := mock.NewUI()
		cmd := &Command{inputs: inputs{ClientID: "id", ClientSecret: "secret"}}
		assert.NotNil(t, cmd.Handler(context.Background(), profile, ui, clients, nil))

		exists, err := afero.Exists(fs, path)
		assert.Nil(t, err)
		assert.False(t, exists, "expected no config write after a failed login")
	})
}
