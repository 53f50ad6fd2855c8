package authmock

import (
	"context"

	"github.com/eddmann/strava-cli/internal/auth"
	"github.com/eddmann/strava-cli/internal/cli"
	"github.com/eddmann/strava-cli/internal/terminal"
)

// AuthClient is a mocked auth client
type AuthClient struct {
	cli.AuthClient
	LoginFn   func(ctx context.Context, ui terminal.UI) (auth.TokenSet, error)
	LogoutFn  func(ctx context.Context) (error, error)
	RefreshFn func(ctx context.Context) (auth.TokenSet, error)
}

// Login calls the mocked Login implementation if provided,
// otherwise the call falls back to the underlying cli.AuthClient implementation.
// NOTE: this may panic if the underlying cli.AuthClient is left undefined
func (ac AuthClient) Login(ctx context.Context, ui terminal.UI) (auth.TokenSet, error) {
	if ac.LoginFn != nil {
		return ac.LoginFn(ctx, ui)
	}
	return ac.AuthClient.Login(ctx, ui)
}

// Logout calls the mocked Logout implementation if provided,
// otherwise the call falls back to the underlying cli.AuthClient implementation.
// NOTE: this may panic if the underlying cli.AuthClient is left undefined
func (ac AuthClient) Logout(ctx context.Context) (error, error) {
	if ac.LogoutFn != nil {
		return ac.LogoutFn(ctx)
	}
	return ac.AuthClient.Logout(ctx)
}

// Refresh calls the mocked Refresh implementation if provided,
// otherwise the call falls back to the underlying cli.AuthClient implementation.
// NOTE: this may panic if the underlying cli.AuthClient is left undefined
func (ac AuthClient) Refresh(ctx context.Context) (auth.TokenSet, error) {
	if ac.RefreshFn != nil {
		return ac.RefreshFn(ctx)
	}
	return ac.AuthClient.Refresh(ctx)
}
