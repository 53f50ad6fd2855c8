package login

import (
	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

type inputs struct {
	ClientID     string
	ClientSecret string
}

// Resolve fills in any missing credentials, preferring stored
// credentials over prompting for new ones
func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	creds := profile.Credentials()

	if i.ClientID == "" {
		if creds.ClientID == "" {
			if err := ui.AskOne(&survey.Input{Message: "Client ID"}, &i.ClientID); err != nil {
				return err
			}
		} else {
			i.ClientID = creds.ClientID
		}
	}

	if i.ClientSecret == "" {
		if creds.ClientSecret == "" {
			if err := ui.AskOne(&survey.Password{Message: "Client Secret"}, &i.ClientSecret); err != nil {
				return err
			}
		} else {
			i.ClientSecret = creds.ClientSecret
		}
	}

	return nil
}

func (i inputs) credentials() auth.Credentials {
	return auth.Credentials{ClientID: i.ClientID, ClientSecret: i.ClientSecret}
}
