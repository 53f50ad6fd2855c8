package segments

import (
	"context"
	"strings"
	"testing"

	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/cloud/strava"
	"github.com/eddmann/strava-cli/internal/output"
	"github.com/eddmann/strava-cli/internal/utils/test/assert"
	"github.com/eddmann/strava-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func newTestProfile(t *testing.T) *cli.Profile {
	t.Helper()
	profile := cli.NewProfile(cli.DefaultProfile, "/home/test/.config/strava-cli/config.yaml")
	profile.SetFs(afero.NewMemMapFs())
	assert.Nil(t, profile.Load())
	return profile
}

func TestSegmentsExplore(t *testing.T) {
	t.Run("should require a search area", func(t *testing.T) {
		profile := newTestProfile(t)

		_, ui := mock.NewUI()
		cmd := &ExploreCommand{}
		err := cmd.Handler(context.Background(), profile, ui, cli.Clients{}, nil)
		assert.NotNil(t, err)
		assert.True(t, strings.Contains(err.Error(), "--bounds"),
			"expected the error to name the missing flag, got: %s", err)
	})

	t.Run("should pass the search filters through to the client", func(t *testing.T) {
		profile := newTestProfile(t)

		var captured strava.ExploreOptions
		clients := cli.Clients{
			Strava: mock.StravaClient{ExploreSegmentsFn: func(ctx context.Context, opts strava.ExploreOptions) (output.Value, error) {
				captured = opts
				return nil, nil
			}},
			Render: func(v output.Value) error { return nil },
		}

		cmd := &ExploreCommand{}
		fs := pflag.NewFlagSet("explore", pflag.ContinueOnError)
		cmd.Flags(fs)
		assert.Nil(t, fs.Parse([]string{"--bounds", "51.3,-0.5,51.7,0.2", "--activity-type", "riding", "--max-cat", "3"}))

		_, ui := mock.NewUI()
		assert.Nil(t, cmd.Handler(context.Background(), profile, ui, clients, nil))
		assert.Equal(t, "51.3,-0.5,51.7,0.2", captured.Bounds)
		assert.Equal(t, "riding", captured.ActivityType)
		assert.Equal(t, 0, captured.MinCategory)
		assert.Equal(t, 3, captured.MaxCategory)
	})
}
