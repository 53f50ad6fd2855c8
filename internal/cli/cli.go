package cli

// Name is the CLI name
const Name = "strava"

// Version is the CLI version
var Version = "0.0.0" // value will be injected at build-time
