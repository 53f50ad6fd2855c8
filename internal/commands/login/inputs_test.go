package login

import (
	"errors"
	"io"
	"testing"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/utils/test/assert"
	"github.com/eddmann/strava-cli/internal/utils/test/mock"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
)

func newTestProfile(t *testing.T) *cli.Profile {
	t.Helper()
	profile := cli.NewProfile(cli.DefaultProfile, "/home/test/.config/strava-cli/config.yaml")
	profile.SetFs(afero.NewMemMapFs())
	assert.Nil(t, profile.Load())
	return profile
}

func TestLoginInputs(t *testing.T) {
	t.Run("should use stored credentials without prompting", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.SetCredentials(auth.Credentials{ClientID: "stored-id", ClientSecret: "stored-secret"})

		_, ui := mock.NewUI()

		i := inputs{}
		assert.Nil(t, i.Resolve(profile, ui))
		assert.Equal(t, auth.Credentials{ClientID: "stored-id", ClientSecret: "stored-secret"}, i.credentials())
	})

	t.Run("should prefer flag values over stored credentials", func(t *testing.T) {
		profile := newTestProfile(t)
		profile.SetCredentials(auth.Credentials{ClientID: "stored-id", ClientSecret: "stored-secret"})

		_, ui := mock.NewUI()

		i := inputs{ClientID: "flag-id", ClientSecret: "flag-secret"}
		assert.Nil(t, i.Resolve(profile, ui))
		assert.Equal(t, auth.Credentials{ClientID: "flag-id", ClientSecret: "flag-secret"}, i.credentials())
	})

	t.Run("should prompt for missing credentials", func(t *testing.T) {
		profile := newTestProfile(t)

		answers := map[string]string{
			"Client ID":     "prompted-id",
			"Client Secret": "prompted-secret",
		}

		ui := mock.NewUIWithOptions(mock.UIOptions{AskOneFn: func(prompt survey.Prompt, answer interface{}) error {
			switch p := prompt.(type) {
			case *survey.Input:
				*(answer.(*string)) = answers[p.Message]
			case *survey.Password:
				*(answer.(*string)) = answers[p.Message]
			default:
				return errors.New("unexpected prompt")
			}
			return nil
		}}, io.Discard)

		i := inputs{}
		assert.Nil(t, i.Resolve(profile, ui))
		assert.Equal(t, auth.Credentials{ClientID: "prompted-id", ClientSecret: "prompted-secret"}, i.credentials())
	})

	t.Run("should propagate a prompt failure", func(t *testing.T) {
		profile := newTestProfile(t)

		ui := mock.NewUIWithOptions(mock.UIOptions{AskOneFn: func(prompt survey.Prompt, answer interface{}) error {
			return errors.New("prompt failed")
		}}, io.Discard)

		i := inputs{}
		assert.NotNil(t, i.Resolve(profile, ui))
	})
}
