package tiprepo

import (
	"context"
	"sort"
	"sync"

	"github.com/yanqian/wellness-tips/internal/domain/wellness"
)

// MemoryRepository is an in-memory TipRepository used for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]wellness.Tip
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]wellness.Tip)}
}

// List implements wellness.TipRepository.
func (r *MemoryRepository) List(_ context.Context, view wellness.View) ([]wellness.Tip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wellness.Tip, 0, len(r.records))
	for _, tip := range r.records {
		if !matchesView(tip, view) {
			continue
		}
		out = append(out, cloneTip(tip))
	}
	sortTips(out)
	return out, nil
}

// Get implements wellness.TipRepository.
func (r *MemoryRepository) Get(_ context.Context, id string) (wellness.Tip, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tip, ok := r.records[id]
	if !ok {
		return wellness.Tip{}, false, nil
	}
	return cloneTip(tip), true, nil
}

// Upsert implements wellness.TipRepository.
func (r *MemoryRepository) Upsert(_ context.Context, tips ...wellness.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, tip := range tips {
		r.records[tip.ID] = cloneTip(tip)
	}
	return nil
}

// Update replaces an existing tip; missing ids are ignored.
func (r *MemoryRepository) Update(_ context.Context, tip wellness.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[tip.ID]; ok {
		r.records[tip.ID] = cloneTip(tip)
	}
	return nil
}

// SetFavorite implements wellness.TipRepository.
func (r *MemoryRepository) SetFavorite(_ context.Context, id string, favorite bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tip, ok := r.records[id]; ok {
		tip.IsFavorite = favorite
		r.records[id] = tip
	}
	return nil
}

// Delete implements wellness.TipRepository.
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

// DeleteAll implements wellness.TipRepository.
func (r *MemoryRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]wellness.Tip)
	return nil
}

// MarkAllOldGeneration implements wellness.TipRepository.
func (r *MemoryRepository) MarkAllOldGeneration(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, tip := range r.records {
		tip.IsCurrentGeneration = false
		r.records[id] = tip
	}
	return nil
}

func matchesView(tip wellness.Tip, view wellness.View) bool {
	switch view {
	case wellness.ViewCurrent:
		return tip.IsCurrentGeneration
	case wellness.ViewFavorites:
		return tip.IsFavorite
	default:
		return true
	}
}

// sortTips orders newest first, ties by id.
func sortTips(tips []wellness.Tip) {
	sort.SliceStable(tips, func(i, j int) bool {
		if !tips[i].CreatedAt.Equal(tips[j].CreatedAt) {
			return tips[i].CreatedAt.After(tips[j].CreatedAt)
		}
		return tips[i].ID < tips[j].ID
	})
}

func cloneTip(tip wellness.Tip) wellness.Tip {
	steps := make([]string, len(tip.StepByStepGuide))
	copy(steps, tip.StepByStepGuide)
	tip.StepByStepGuide = steps
	return tip
}

var _ wellness.TipRepository = (*MemoryRepository)(nil)
