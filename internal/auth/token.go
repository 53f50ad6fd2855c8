package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/eddmann/strava-cli/internal/cli/feedback"
	"github.com/eddmann/strava-cli/internal/terminal"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// set of Strava OAuth endpoints
const (
	authorizeURL   = "https://www.strava.com/oauth/authorize"
	tokenURL       = "https://www.strava.com/oauth/token"
	deauthorizeURL = "https://www.strava.com/oauth/deauthorize"
)

// set of token lifecycle policy constants
const (
	// CallbackPort is the fixed port of the local callback listener; it must
	// match the redirect URI registered with the Strava API application
	CallbackPort = 8000

	// RefreshMargin is the safety margin before expiry at which a token is
	// treated as needing refresh
	RefreshMargin = 60 * time.Second

	// CallbackTimeout is how long login waits for the OAuth callback
	CallbackTimeout = 120 * time.Second
)

var defaultScopes = []string{
	"read",
	"read_all",
	"profile:read_all",
	"activity:read",
	"activity:read_all",
	"activity:write",
}

var errMissingCredentials = errors.New("no Strava API client credentials configured")

// set of user guidance attached to credential errors
var credentialSuggestions = []string{
	"create an API application at https://www.strava.com/settings/api with callback domain 'localhost'",
	"then run 'strava login' and enter its Client ID and Client Secret, or set STRAVA_CLIENT_ID and STRAVA_CLIENT_SECRET",
}

// Manager owns the OAuth2 authorization-code grant and the refresh protocol
type Manager struct {
	store      Store
	httpClient *http.Client

	// overridable for tests
	authorizeURL   string
	tokenURL       string
	deauthorizeURL string
	callbackPort   int
	waitTimeout    time.Duration
	margin         time.Duration
	now            func() time.Time
}

// NewManager creates a new token manager persisting through the provided store
func NewManager(store Store) *Manager {
	return &Manager{
		store:          store,
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		authorizeURL:   authorizeURL,
		tokenURL:       tokenURL,
		deauthorizeURL: deauthorizeURL,
		callbackPort:   CallbackPort,
		waitTimeout:    CallbackTimeout,
		margin:         RefreshMargin,
		now:            time.Now,
	}
}

// Login performs the interactive authorization-code grant: it starts the
// local callback listener, sends the user's browser to the authorization
// URL, waits for exactly one callback, exchanges the code for a token set,
// and persists it into the active profile.
func (m *Manager) Login(ctx context.Context, ui terminal.UI) (TokenSet, error) {
	creds := m.store.Credentials()
	if !creds.Valid() {
		return TokenSet{}, feedback.NewAuthErr(errMissingCredentials, credentialSuggestions...)
	}

	server := newCallbackServer(m.callbackPort)
	if err := server.Start(); err != nil {
		return TokenSet{}, feedback.NewAuthErr(err,
			fmt.Sprintf("close the process occupying port %d and retry", m.callbackPort))
	}
	defer server.Close()

	state := uuid.NewString()
	authURL := m.oauthConfig(creds, server.RedirectURI()).AuthCodeURL(state,
		oauth2.SetAuthURLParam("approval_prompt", "auto"),
		// Strava expects a single comma-joined scope parameter
		oauth2.SetAuthURLParam("scope", strings.Join(defaultScopes, ",")),
	)

	ui.Print(terminal.NewTextLog("Opening browser for Strava authorization..."))
	if err := ui.OpenBrowser(authURL); err != nil {
		ui.Print(terminal.NewTextLog("If the browser doesn't open, visit:\n%s", authURL))
	}
	ui.Print(terminal.NewTextLog("Waiting for authorization..."))

	result, err := server.Wait(ctx, m.waitTimeout)
	if err != nil {
		return TokenSet{}, feedback.NewTransientErr(err)
	}

	if result.Err != "" {
		return TokenSet{}, feedback.NewAuthErr(fmt.Errorf("authorization failed: %s", result.Err))
	}
	if result.State != state {
		return TokenSet{}, feedback.NewAuthErr(errors.New("state mismatch in OAuth callback"))
	}

	token, err := m.oauthConfig(creds, server.RedirectURI()).Exchange(m.oauthContext(ctx), result.Code)
	if err != nil {
		return TokenSet{}, mapTokenEndpointErr("token exchange failed", err)
	}

	tokens := tokenSetFrom(token, TokenSet{})
	m.store.SetTokenSet(tokens)
	if err := m.store.Save(); err != nil {
		return TokenSet{}, err
	}
	return tokens, nil
}

// Refresh implements the refresh protocol: a token expiring more than the
// safety margin in the future is returned unchanged without any network
// call; otherwise exactly one token-endpoint call is made, and on success
// the rotated token set is persisted. A failed refresh means the user must
// log in again.
func (m *Manager) Refresh(ctx context.Context) (TokenSet, error) {
	tokens, err := m.store.TokenSet()
	if err != nil {
		return TokenSet{}, err
	}

	if !tokens.Authenticated() {
		return TokenSet{}, feedback.NewAuthErr(errors.New("not logged in"), "run 'strava login' to authenticate")
	}

	// a token supplied through the environment carries no expiry; pass it through
	if tokens.ExpiresAt == 0 && tokens.RefreshToken == "" {
		return tokens, nil
	}

	if !tokens.ExpiresWithin(m.margin, m.now()) {
		return tokens, nil
	}

	if tokens.RefreshToken == "" {
		return TokenSet{}, feedback.NewAuthErr(errors.New("access token expired and no refresh token available"), "run 'strava login' to re-authenticate")
	}

	creds := m.store.Credentials()
	if !creds.Valid() {
		return TokenSet{}, feedback.NewAuthErr(errMissingCredentials, credentialSuggestions...)
	}

	source := m.oauthConfig(creds, "").TokenSource(m.oauthContext(ctx), &oauth2.Token{RefreshToken: tokens.RefreshToken})
	token, err := source.Token()
	if err != nil {
		return TokenSet{}, mapTokenEndpointErr("token refresh failed", err)
	}

	refreshed := tokenSetFrom(token, tokens)
	m.store.SetTokenSet(refreshed)
	if err := m.store.Save(); err != nil {
		return TokenSet{}, err
	}
	return refreshed, nil
}

// Logout clears the token state of the active profile. Revocation is
// best-effort: its failure is returned as a warning for the caller to
// report and never blocks the local logout.
func (m *Manager) Logout(ctx context.Context) (warning error, err error) {
	tokens, err := m.store.TokenSet()
	if err != nil {
		return nil, err
	}

	if tokens.Authenticated() {
		if revokeErr := m.deauthorize(ctx, tokens.AccessToken); revokeErr != nil {
			warning = fmt.Errorf("failed to revoke access token: %w", revokeErr)
		}
	}

	m.store.ClearTokenSet()
	return warning, m.store.Save()
}

func (m *Manager) oauthConfig(creds Credentials, redirectURI string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  redirectURI,
		Endpoint: oauth2.Endpoint{
			AuthURL:   m.authorizeURL,
			TokenURL:  m.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func (m *Manager) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, m.httpClient)
}

func (m *Manager) deauthorize(ctx context.Context, accessToken string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.deauthorizeURL+"?access_token="+accessToken, nil)
	if err != nil {
		return err
	}

	res, err := m.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("deauthorize returned %s", res.Status)
	}
	return nil
}

// mapTokenEndpointErr distinguishes an explicit OAuth denial, which requires
// the user to re-authenticate, from a failure safe to retry: network errors
// and token endpoint 5xx responses are transient
func mapTokenEndpointErr(message string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && (retrieveErr.Response == nil || retrieveErr.Response.StatusCode < 500) {
		return feedback.NewAuthErr(fmt.Errorf("%s: %w", message, err), "run 'strava login' to re-authenticate")
	}
	return feedback.NewTransientErr(fmt.Errorf("%s: %w", message, err))
}

// tokenSetFrom reads the Strava token endpoint response into a TokenSet,
// carrying forward fields a refresh response omits
func tokenSetFrom(token *oauth2.Token, prev TokenSet) TokenSet {
	tokens := TokenSet{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry.Unix(),
		AthleteID:    prev.AthleteID,
		Scopes:       prev.Scopes,
	}

	if tokens.RefreshToken == "" {
		tokens.RefreshToken = prev.RefreshToken
	}

	// Strava reports expiry as absolute epoch seconds alongside expires_in
	if expiresAt, ok := token.Extra("expires_at").(float64); ok {
		tokens.ExpiresAt = int64(expiresAt)
	}

	if athlete, ok := token.Extra("athlete").(map[string]interface{}); ok {
		if id, ok := athlete["id"].(float64); ok {
			tokens.AthleteID = int64(id)
		}
	}

	if scope, ok := token.Extra("scope").(string); ok && scope != "" {
		tokens.Scopes = strings.Split(scope, ",")
	}

	return tokens
}
