// Package selection provides SelectionStore adapters. The redis store is the
// production one (selections survive instance restarts for the session TTL);
// the memory store backs development and tests.
package selection

import (
	"context"
	"fmt"
	"sync"

	"github.com/primelogicsol/artstay-booking/internal/domain/entities"
	"github.com/primelogicsol/artstay-booking/internal/domain/providers"
)

// MemoryStore is an in-process SelectionStore keyed by session and vertical.
type MemoryStore struct {
	mu         sync.RWMutex
	selections map[string]*entities.Selection
}

// NewMemoryStore creates an in-memory selection store.
func NewMemoryStore() providers.SelectionStore {
	return &MemoryStore{
		selections: make(map[string]*entities.Selection),
	}
}

func key(sessionID string, vertical entities.Vertical) string {
	return fmt.Sprintf("%s:%s", sessionID, vertical)
}

// Get returns the current selection, or the empty selection when none exists.
func (s *MemoryStore) Get(ctx context.Context, sessionID string, vertical entities.Vertical) (*entities.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sel, ok := s.selections[key(sessionID, vertical)]; ok {
		return sel.Clone(), nil
	}
	return entities.EmptySelection(vertical), nil
}

// Merge applies a shallow partial update and returns the result.
func (s *MemoryStore) Merge(ctx context.Context, sessionID string, vertical entities.Vertical, patch entities.SelectionPatch) (*entities.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := key(sessionID, vertical)
	sel, ok := s.selections[k]
	if !ok {
		sel = entities.EmptySelection(vertical)
		s.selections[k] = sel
	}
	sel.Apply(patch)
	return sel.Clone(), nil
}

// Clear resets the selection to empty.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string, vertical entities.Vertical) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selections, key(sessionID, vertical))
	return nil
}
