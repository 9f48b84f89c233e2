// Package session keeps one scan store per web visitor.
package session

import (
	"sync"
	"time"

	"scan-viewer-go/pkg/services"
	"scan-viewer-go/pkg/store"

	"github.com/google/uuid"
)

// CookieName is the cookie that carries the session id
const CookieName = "scan_session"

// Session is one visitor's page state. The store lives in the service;
// the last error and selected tab are local to the page.
type Session struct {
	ID      string
	Service *services.ScanService

	mu       sync.Mutex
	err      error
	tab      string
	lastSeen time.Time
}

// Err returns the error of the last submission, if any
func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// SetErr records the outcome of a submission
func (s *Session) SetErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// Tab returns the selected link category
func (s *Session) Tab() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tab
}

// SetTab selects a link category
func (s *Session) SetTab(category string) {
	s.mu.Lock()
	s.tab = category
	s.mu.Unlock()
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Manager creates and looks up sessions
type Manager struct {
	scanner services.Scanner
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager creates a manager whose sessions scan through scanner.
// Sessions idle for longer than ttl are dropped; zero keeps them forever.
func NewManager(scanner services.Scanner, ttl time.Duration) *Manager {
	return &Manager{
		scanner:  scanner,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, or a fresh one when id is unknown.
// The boolean reports whether a new session was created.
func (m *Manager) Get(id string) (*Session, bool) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[id]; ok && id != "" {
		s.touch(now)
		return s, false
	}

	m.prune(now)
	s := &Session{
		ID:       uuid.NewString(),
		Service:  services.NewScanService(store.New(), m.scanner),
		lastSeen: now,
	}
	m.sessions[s.ID] = s
	return s, true
}

// Len returns the number of live sessions
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// prune drops idle sessions. Callers hold m.mu.
func (m *Manager) prune(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, s := range m.sessions {
		if s.idleSince(now) > m.ttl {
			delete(m.sessions, id)
		}
	}
}
