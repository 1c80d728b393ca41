package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubHTTPServer stands in for the server's listener in lifecycle tests.
// ListenErr is what ListenAndServe returns; use http.ErrServerClosed for a
// clean exit. When Hold is set, Shutdown waits on it or the context.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	Hold        chan struct{}

	mu        sync.Mutex
	listens   int
	shutdowns int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listens++
	s.mu.Unlock()
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdowns++
	s.mu.Unlock()

	if s.Hold != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.Hold:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listens
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdowns
}
