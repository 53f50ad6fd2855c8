// Package auth owns the OAuth2 token lifecycle: the authorization-code
// login flow with its local callback listener, the refresh protocol, and
// the session gate every authenticated API call passes through.
package auth

import "time"

// Credentials are the OAuth client credentials of a Strava API application
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// Valid determines whether both parts of the credentials are present
func (c Credentials) Valid() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

// TokenSet is the authentication state of a profile
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64 // epoch seconds
	AthleteID    int64
	Scopes       []string
}

// Authenticated determines whether an access token is present
func (t TokenSet) Authenticated() bool {
	return t.AccessToken != ""
}

// ExpiresWithin determines whether the access token expires inside the
// provided safety margin from now; such a token must not be used for a
// call without a preceding refresh
func (t TokenSet) ExpiresWithin(margin time.Duration, now time.Time) bool {
	return now.Add(margin).Unix() >= t.ExpiresAt
}

// Store persists credentials and token state for the active profile
type Store interface {
	Credentials() Credentials
	SetCredentials(creds Credentials)
	TokenSet() (TokenSet, error)
	SetTokenSet(tokens TokenSet)
	ClearTokenSet()
	Save() error
}
