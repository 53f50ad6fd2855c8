package whoami

import (
	"context"
	"testing"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/cli/feedback"
	"github.com/eddmann/strava-cli/internal/output"
	"github.com/eddmann/strava-cli/internal/utils/test/assert"
	"github.com/eddmann/strava-cli/internal/utils/test/mock"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/afero"
)

func newTestProfile(t *testing.T, name string) *cli.Profile {
	t.Helper()
	profile := cli.NewProfile(name, "/home/test/.config/strava-cli/config.yaml")
	profile.SetFs(afero.NewMemMapFs())
	assert.Nil(t, profile.Load())
	return profile
}

func TestWhoami(t *testing.T) {
	t.Run("should report an unauthenticated profile without any network call", func(t *testing.T) {
		profile := newTestProfile(t, cli.DefaultProfile)
		profile.SetCredentials(auth.Credentials{ClientID: "12345"})

		var rendered output.Value
		clients := cli.Clients{
			Strava: mock.StravaClient{}, // any call would panic
			Render: func(v output.Value) error { rendered = v; return nil },
		}

		_, ui := mock.NewUI()
		cmd := &Command{}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, clients, nil))

		record := rendered.(*orderedmap.OrderedMap)
		assert.Equal(t, []string{"profile", "client_id", "authenticated"}, record.Keys())

		authenticated, _ := record.Get("authenticated")
		assert.Equal(t, false, authenticated)
	})

	t.Run("should report the athlete and scopes of an authenticated profile", func(t *testing.T) {
		profile := newTestProfile(t, cli.DefaultProfile)
		profile.SetCredentials(auth.Credentials{ClientID: "12345"})
		profile.SetTokenSet(auth.TokenSet{
			AccessToken:  "access123",
			RefreshToken: "refresh456",
			ExpiresAt:    1700000000,
			AthleteID:    789,
			Scopes:       []string{"read", "activity:read_all"},
		})

		var rendered output.Value
		clients := cli.Clients{
			Render: func(v output.Value) error { rendered = v; return nil },
		}

		_, ui := mock.NewUI()
		cmd := &Command{}
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, clients, nil))

		record := rendered.(*orderedmap.OrderedMap)

		athleteID, _ := record.Get("athlete_id")
		assert.Equal(t, int64(789), athleteID)

		scopes, _ := record.Get("scopes")
		assert.Equal(t, "read,activity:read_all", scopes)

		expiresAt, _ := record.Get("expires_at")
		assert.Equal(t, "2023-11-14T22:13:20Z", expiresAt)
	})

	t.Run("should fail for an unknown named profile", func(t *testing.T) {
		profile := newTestProfile(t, "unknown")

		_, ui := mock.NewUI()
		cmd := &Command{}
		err := cmd.Handler(context.Background(), profile, ui, cli.Clients{}, nil)
		assert.NotNil(t, err)
		assert.Equal(t, feedback.KindProfileNotFound, feedback.KindOf(err))
	})
}
