package store

import (
	"sync"

	"scan-viewer-go/pkg/models"
)

// State is the client-side view of the current scan.
type State struct {
	Domain      string
	ScanID      string
	UniqueLinks models.LinkInventory
	Workers     models.Workers
	Finished    bool
	Summary     *models.ScanSummary
}

// Store holds one State and applies actions to it through Reduce.
// Each front end creates its own Store; there is no global instance.
type Store struct {
	mu    sync.RWMutex
	state State
}

// New returns a Store with the zero State.
func New() *Store {
	return &Store{}
}

// Dispatch applies a to the current state and returns the result.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
