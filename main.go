// Strava is a tool for querying your Strava data from the command line.
package main

import (
	"github.com/eddmann/strava-cli/cmd"
)

func main() {
	cmd.Run()
}
