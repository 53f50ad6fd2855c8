package cli

import (
	"fmt"

	"github.com/mitchellh/go-homedir"
)

const (
	configDir  = ".config/strava-cli"
	configFile = "config.yaml"
)

func defaultConfigPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", home, configDir, configFile), nil
}
