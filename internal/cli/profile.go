package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli/feedback"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	yaml "gopkg.in/yaml.v3"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// DefaultPageLimit is the page limit used when none is configured
	DefaultPageLimit = 30
)

// set of supported environment variable overrides
const (
	EnvClientID     = "STRAVA_CLIENT_ID"
	EnvClientSecret = "STRAVA_CLIENT_SECRET"
	EnvAccessToken  = "STRAVA_ACCESS_TOKEN"
	EnvRefreshToken = "STRAVA_REFRESH_TOKEN"
	EnvConfig       = "STRAVA_CONFIG"
	EnvFormat       = "STRAVA_FORMAT"
	EnvProfile      = "STRAVA_PROFILE"
)

// set of supported config document keys
const (
	keyClientID       = "client.id"
	keyClientSecret   = "client.secret"
	keyDefaultsFormat = "defaults.format"
	keyDefaultsLimit  = "defaults.limit"

	sectionAuth     = "auth"
	sectionProfiles = "profiles"

	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyExpiresAt    = "expires_at"
	keyAthleteID    = "athlete_id"
	keyScopes       = "scopes"
)

// Profile is the config document bound to an active profile name. The
// default profile's token state lives in the `auth` section; alternate
// accounts mirror it under `profiles.<name>`. Each Profile owns its own
// viper instance, so no global state is mutated.
type Profile struct {
	Name string

	path string
	fs   afero.Fs
	v    *viper.Viper
}

// NewProfile creates a new CLI profile against the provided config path
func NewProfile(name, path string) *Profile {
	p := &Profile{
		Name: name,
		path: path,
		fs:   afero.NewOsFs(),
	}
	p.v = viper.New()
	p.v.SetFs(p.fs)
	p.v.SetDefault(keyDefaultsFormat, "json")
	p.v.SetDefault(keyDefaultsLimit, DefaultPageLimit)
	return p
}

// SetFs swaps the profile's filesystem, for tests
func (p *Profile) SetFs(fs afero.Fs) {
	p.fs = fs
	p.v.SetFs(fs)
}

// Path returns the CLI profile's config filepath
func (p *Profile) Path() string {
	return p.path
}

// Load loads the config document; a missing file yields an empty config
func (p *Profile) Load() error {
	p.v.SetConfigFile(p.path)
	p.v.SetConfigType("yaml")

	if err := p.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) || os.IsNotExist(err) {
			return nil
		}
		return feedback.NewConfigErr(err)
	}
	return nil
}

// Save performs a full atomic rewrite of the config document: the content
// is written to a temp file in the config dir, then renamed over the
// target, so a crash can never leave a partially written config behind.
func (p *Profile) Save() error {
	dir := filepath.Dir(p.path)
	if err := p.fs.MkdirAll(dir, 0700); err != nil {
		return feedback.NewConfigErr(err)
	}

	data, err := yaml.Marshal(p.v.AllSettings())
	if err != nil {
		return feedback.NewConfigErr(err)
	}

	tmp := p.path + ".tmp"
	if err := afero.WriteFile(p.fs, tmp, data, 0600); err != nil {
		return feedback.NewConfigErr(err)
	}

	if err := p.fs.Rename(tmp, p.path); err != nil {
		return feedback.NewConfigErr(err)
	}
	return nil
}

// Credentials gets the API client credentials; environment overrides win
// over the config document
func (p *Profile) Credentials() auth.Credentials {
	creds := auth.Credentials{
		ClientID:     p.v.GetString(keyClientID),
		ClientSecret: p.v.GetString(keyClientSecret),
	}

	if id := os.Getenv(EnvClientID); id != "" {
		creds.ClientID = id
	}
	if secret := os.Getenv(EnvClientSecret); secret != "" {
		creds.ClientSecret = secret
	}
	return creds
}

// SetCredentials sets the API client credentials
func (p *Profile) SetCredentials(creds auth.Credentials) {
	p.v.Set(keyClientID, creds.ClientID)
	p.v.Set(keyClientSecret, creds.ClientSecret)
}

// TokenSet gets the token state of the active profile. A non-default
// profile name unknown to the config document is a profile-not-found
// error. An access token supplied through the environment overrides the
// stored one and carries no expiry.
func (p *Profile) TokenSet() (auth.TokenSet, error) {
	if p.Name != DefaultProfile && !p.v.IsSet(fmt.Sprintf("%s.%s", sectionProfiles, p.Name)) {
		return auth.TokenSet{}, feedback.NewProfileNotFoundErr(p.Name)
	}

	tokens := auth.TokenSet{
		AccessToken:  p.getString(keyAccessToken),
		RefreshToken: p.getString(keyRefreshToken),
		ExpiresAt:    p.v.GetInt64(p.tokenKey(keyExpiresAt)),
		AthleteID:    p.v.GetInt64(p.tokenKey(keyAthleteID)),
		Scopes:       p.v.GetStringSlice(p.tokenKey(keyScopes)),
	}

	if token := os.Getenv(EnvAccessToken); token != "" {
		tokens.AccessToken = token
		tokens.RefreshToken = os.Getenv(EnvRefreshToken)
		tokens.ExpiresAt = 0
	} else if refresh := os.Getenv(EnvRefreshToken); refresh != "" {
		tokens.RefreshToken = refresh
	}

	return tokens, nil
}

// SetTokenSet sets the token state of the active profile
func (p *Profile) SetTokenSet(tokens auth.TokenSet) {
	p.v.Set(p.tokenKey(keyAccessToken), tokens.AccessToken)
	p.v.Set(p.tokenKey(keyRefreshToken), tokens.RefreshToken)
	p.v.Set(p.tokenKey(keyExpiresAt), tokens.ExpiresAt)
	p.v.Set(p.tokenKey(keyAthleteID), tokens.AthleteID)
	p.v.Set(p.tokenKey(keyScopes), tokens.Scopes)
}

// ClearTokenSet clears the token state of the active profile
func (p *Profile) ClearTokenSet() {
	p.SetTokenSet(auth.TokenSet{Scopes: []string{}})
}

// DefaultFormat gets the configured default output format
func (p *Profile) DefaultFormat() string {
	return p.v.GetString(keyDefaultsFormat)
}

// DefaultLimit gets the configured default page limit
func (p *Profile) DefaultLimit() int {
	return p.v.GetInt(keyDefaultsLimit)
}

func (p *Profile) getString(name string) string {
	return p.v.GetString(p.tokenKey(name))
}

func (p *Profile) tokenKey(name string) string {
	if p.Name == DefaultProfile {
		return fmt.Sprintf("%s.%s", sectionAuth, name)
	}
	return fmt.Sprintf("%s.%s.%s", sectionProfiles, p.Name, name)
}
