package auth

import "context"

// Session guarantees a valid, non-expired access token is available before
// a wrapped operation runs. It is the sole gate through which domain
// commands reach the Strava API: refresh happens first, and an auth
// failure propagates without the operation ever being invoked.
type Session struct {
	manager *Manager
}

// NewSession creates a new authenticated session backed by the provided manager
func NewSession(manager *Manager) *Session {
	return &Session{manager: manager}
}

// Token runs the refresh protocol and returns a valid access token
func (s *Session) Token(ctx context.Context) (string, error) {
	tokens, err := s.manager.Refresh(ctx)
	if err != nil {
		return "", err
	}
	return tokens.AccessToken, nil
}

// WithAuth runs op with a valid access token, returning its result
// unchanged. Op is never invoked with a token known to be invalid.
func (s *Session) WithAuth(ctx context.Context, op func(ctx context.Context, accessToken string) error) error {
	token, err := s.Token(ctx)
	if err != nil {
		return err
	}
	return op(ctx, token)
}
