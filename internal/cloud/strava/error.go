package strava

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/eddmann/strava-cli/internal/cli/feedback"
)

// ServerError is a Strava server error
type ServerError struct {
	StatusCode int
	Message    string `json:"message"`
}

func (se ServerError) Error() string {
	return fmt.Sprintf("%s (status %d)", se.Message, se.StatusCode)
}

// parseResponseError reads a server error from the provided *http.Response
// and maps it into the CLI error taxonomy
func parseResponseError(res *http.Response) error {
	serverErr := ServerError{StatusCode: res.StatusCode, Message: res.Status}

	if strings.HasPrefix(res.Header.Get(headerContentType), mediaTypeJSON) {
		var payload ServerError
		if err := json.NewDecoder(res.Body).Decode(&payload); err == nil && payload.Message != "" {
			serverErr.Message = payload.Message
		}
	}

	switch res.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return feedback.NewAuthErr(serverErr, "run 'strava login' to re-authenticate")
	case http.StatusNotFound:
		return feedback.NewErr(feedback.KindGeneral, serverErr)
	case http.StatusTooManyRequests:
		return feedback.NewTransientErr(fmt.Errorf("rate limit exceeded: %w", serverErr))
	default:
		if res.StatusCode >= 500 {
			return feedback.NewTransientErr(serverErr)
		}
		return feedback.NewErr(feedback.KindGeneral, serverErr)
	}
}

// IsNotFound determines whether the provided error is a 404 server error
func IsNotFound(err error) bool {
	var serverErr ServerError
	return errors.As(err, &serverErr) && serverErr.StatusCode == http.StatusNotFound
}
