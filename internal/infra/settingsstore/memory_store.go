package settingsstore

import (
	"context"
	"sync"

	"github.com/yanqian/wellness-tips/internal/domain/settings"
)

// MemoryStore keeps settings in process memory for tests/dev.
type MemoryStore struct {
	mu       sync.RWMutex
	language string
	set      bool
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// GetLanguage implements settings.Store.
func (s *MemoryStore) GetLanguage(_ context.Context) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.language, s.set, nil
}

// SetLanguage implements settings.Store.
func (s *MemoryStore) SetLanguage(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = code
	s.set = true
	return nil
}

var _ settings.Store = (*MemoryStore)(nil)
