// Package auth carries the bearer credential for backend proxy calls.
// Token acquisition and refresh are owned by an external identity
// component; this package only holds the handle the resolver needs.
package auth

import "sync"

// StaticTokenSource implements domain.TokenProvider around a token that
// can be swapped at runtime (e.g. after a session refresh).
type StaticTokenSource struct {
	mu    sync.RWMutex
	token string
}

// NewStaticTokenSource creates a token source with an initial token,
// which may be empty when no session exists yet.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *StaticTokenSource) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the stored token.
func (s *StaticTokenSource) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}
