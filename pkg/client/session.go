package client

import "sync"

// Session holds the bearer credential attached to outgoing requests.
// Lifecycle: a successful login sets the token, an unauthorized response
// outside the auth flow clears it, and so does an explicit logout.
// A Session may be shared between several clients.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession(token string) *Session {
	return &Session{token: token}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *Session) Clear() {
	s.SetToken("")
}

func (s *Session) Active() bool {
	return len(s.Token()) > 0
}
