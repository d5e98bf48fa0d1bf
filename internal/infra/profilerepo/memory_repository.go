package profilerepo

import (
	"context"
	"sync"

	"github.com/yanqian/wellness-tips/internal/domain/profile"
)

// MemoryRepository keeps the singleton profile in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	profile *profile.UserProfile
}

// NewMemoryRepository constructs an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) Get(_ context.Context) (profile.UserProfile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.profile == nil {
		return profile.UserProfile{}, false, nil
	}
	return cloneProfile(*r.profile), true, nil
}

func (r *MemoryRepository) Save(_ context.Context, p profile.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneProfile(p)
	stored.ID = profile.SingletonID
	r.profile = &stored
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profile = nil
	return nil
}

var _ profile.Repository = (*MemoryRepository)(nil)
