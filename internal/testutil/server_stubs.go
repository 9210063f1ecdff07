package testutil

import (
	"context"
	"net/http"
	"sync"
)

// StubHTTPServer mimics http.Server: ListenAndServe blocks until Shutdown and
// then returns http.ErrServerClosed, unless ListenErr is set.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	// ShutdownBlock, when set, holds Shutdown until it is closed or ctx ends.
	ShutdownBlock chan struct{}

	mu            sync.Mutex
	closed        chan struct{}
	closeOnce     sync.Once
	listenCalls   int
	shutdownCalls int
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.mu.Lock()
	s.listenCalls++
	closed := s.closedLocked()
	s.mu.Unlock()

	if s.ListenErr != nil {
		return s.ListenErr
	}
	<-closed
	return http.ErrServerClosed
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.shutdownCalls++
	closed := s.closedLocked()
	s.mu.Unlock()

	s.closeOnce.Do(func() { close(closed) })
	if s.ShutdownBlock != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.ShutdownBlock:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listenCalls
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shutdownCalls
}

func (s *StubHTTPServer) closedLocked() chan struct{} {
	if s.closed == nil {
		s.closed = make(chan struct{})
	}
	return s.closed
}
