package logout

import (
	"context"
	"strings"
	"testing"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/utils/test/assert"
	"github.com/eddmann/strava-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestLogout(t *testing.T) {
	t.Run("should clear the token state of an unauthenticated profile", func(t *testing.T) {
		profile := cli.NewProfile(cli.DefaultProfile, "/home/test/.config/strava-cli/config.yaml")
		profile.SetFs(afero.NewMemMapFs())
		assert.Nil(t, profile.Load())

		out, ui := mock.NewUI()

		cmd := &Command{}
		clients := cli.Clients{Auth: auth.NewManager(profile)}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, clients, nil))

		assert.True(t, strings.Contains(out.String(), "Successfully logged out"),
			"expected a logout confirmation, got: %s", out.String())

		tokens, err := profile.TokenSet()
		assert.Nil(t, err)
		assert.False(t, tokens.Authenticated(), "expected no token state after logout")
	})
}
