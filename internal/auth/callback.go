package auth

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const callbackPath = "/callback"

const callbackSuccessHTML = `<html><body>
<h1>Authentication Successful</h1>
<p>You can close this window and return to the terminal.</p>
</body></html>`

const callbackErrorHTML = `<html><body>
<h1>Authentication Failed</h1>
<p>Error: %s</p>
<p>You can close this window.</p>
</body></html>`

// CallbackResult is the outcome of the single OAuth callback request:
// either an authorization code with its state echo, or an error code
type CallbackResult struct {
	Code  string
	State string
	Err   string
}

// callbackServer is a temporary local HTTP listener for receiving the OAuth
// redirect. It accepts exactly one callback, then is shut down by the caller.
type callbackServer struct {
	port     int
	server   *http.Server
	listener net.Listener
	resultCh chan CallbackResult
	once     sync.Once
}

func newCallbackServer(port int) *callbackServer {
	return &callbackServer{
		port:     port,
		resultCh: make(chan CallbackResult, 1),
	}
}

// Start binds the listener on the fixed port. A port already occupied by
// another process is a hard failure: silently choosing a different port
// would break the registered redirect URI.
func (s *callbackServer) Start() error {
	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", s.port))
	if err != nil {
		return fmt.Errorf("failed to listen on callback port %d: %w", s.port, err)
	}
	s.listener = listener

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, s.handleCallback)

	s.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		_ = s.server.Serve(listener)
	}()

	return nil
}

// RedirectURI returns the redirect URI the listener serves
func (s *callbackServer) RedirectURI() string {
	return fmt.Sprintf("http://localhost:%d%s", s.port, callbackPath)
}

// Wait blocks until the callback arrives, the timeout elapses,
// or the context is cancelled
func (s *callbackServer) Wait(ctx context.Context, timeout time.Duration) (CallbackResult, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case result := <-s.resultCh:
		return result, nil
	case <-timer.C:
		return CallbackResult{}, fmt.Errorf("timed out after %s waiting for authorization", timeout)
	case <-ctx.Done():
		return CallbackResult{}, ctx.Err()
	}
}

// Close shuts the listener down, releasing the port
func (s *callbackServer) Close() {
	if s.server != nil {
		_ = s.server.Close()
	}
}

func (s *callbackServer) handleCallback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result := CallbackResult{
		Code:  query.Get("code"),
		State: query.Get("state"),
		Err:   query.Get("error"),
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	if result.Err != "" {
		fmt.Fprintf(w, callbackErrorHTML, result.Err)
	} else {
		fmt.Fprint(w, callbackSuccessHTML)
	}

	s.once.Do(func() {
		s.resultCh <- result
	})
}
