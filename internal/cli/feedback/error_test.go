package feedback

import (
	"errors"
	"fmt"
	"testing"

	"github.com/eddmann/strava-cli/internal/utils/test/assert"
)

func TestErrKinds(t *testing.T) {
	for _, tc := range []struct {
		description  string
		err          error
		expectedKind Kind
		expectedCode int
	}{
		{
			description:  "a plain error should be general",
			err:          errors.New("boom"),
			expectedKind: KindGeneral,
			expectedCode: ExitCodeError,
		},
		{
			description:  "a config error should exit 1",
			err:          NewConfigErr(errors.New("permission denied")),
			expectedKind: KindConfig,
			expectedCode: ExitCodeError,
		},
		{
			description:  "a profile not found error should exit 1",
			err:          NewProfileNotFoundErr("race-day"),
			expectedKind: KindProfileNotFound,
			expectedCode: ExitCodeError,
		},
		{
			description:  "an auth error should exit 2",
			err:          NewAuthErr(errors.New("state mismatch")),
			expectedKind: KindAuth,
			expectedCode: ExitCodeAuth,
		},
		{
			description:  "a transient error should exit 1",
			err:          NewTransientErr(errors.New("connection refused")),
			expectedKind: KindTransient,
			expectedCode: ExitCodeError,
		},
		{
			description:  "a serialization error should exit 1",
			err:          NewSerializationErr(errors.New("unrenderable value")),
			expectedKind: KindSerialization,
			expectedCode: ExitCodeError,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expectedKind, KindOf(tc.err))
			assert.Equal(t, tc.expectedCode, ExitCode(tc.err))
		})
	}
}

func TestErrKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("login failed: %w", NewAuthErr(errors.New("invalid refresh token")))

	assert.True(t, IsAuthErr(err), "expected wrapped error to remain an auth error")
	assert.Equal(t, ExitCodeAuth, ExitCode(err))
}

func TestErrSuggestions(t *testing.T) {
	t.Run("should surface attached suggestions", func(t *testing.T) {
		err := NewAuthErr(errors.New("token expired"), "run 'strava login' to re-authenticate")
		assert.Equal(t, []string{"run 'strava login' to re-authenticate"}, Suggestions(err))
	})

	t.Run("should surface suggestions through wrapping", func(t *testing.T) {
		err := fmt.Errorf("refresh failed: %w", NewProfileNotFoundErr("race-day"))
		assert.Equal(t, []string{"run 'strava login --profile race-day' to create it"}, Suggestions(err))
	})

	t.Run("should return nothing for a plain error", func(t *testing.T) {
		assert.Nil(t, Suggestions(errors.New("boom")))
	})
}

func TestExitCodeNil(t *testing.T) {
	assert.Equal(t, ExitCodeSuccess, ExitCode(nil))
}
