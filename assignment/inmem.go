package assignment

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inMemRepo struct {
	mu          sync.RWMutex
	assignments map[uuid.UUID]Assignment
}

func NewInMemRepo() *inMemRepo {
	return &inMemRepo{
		assignments: make(map[uuid.UUID]Assignment),
	}
}

// Store implements Repo
func (r *inMemRepo) Store(ctx context.Context, a Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments[a.ID] = a
	return nil
}

// Get implements Repo
func (r *inMemRepo) Get(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.assignments[id]; ok {
		return &a, nil
	}
	return nil, nil
}

// List implements Repo
func (r *inMemRepo) List(ctx context.Context) ([]Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]Assignment, 0, len(r.assignments))
	for _, a := range r.assignments {
		all = append(all, a)
	}
	return all, nil
}

// ListByCreator implements Repo
func (r *inMemRepo) ListByCreator(ctx context.Context, creator uuid.UUID) ([]Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var owned []Assignment
	for _, a := range r.assignments {
		if a.CreatedBy == creator {
			owned = append(owned, a)
		}
	}
	return owned, nil
}

// Update implements Repo
func (r *inMemRepo) Update(ctx context.Context, a Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assignments[a.ID] = a
	return nil
}

// Delete implements Repo
func (r *inMemRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.assignments, id)
	return nil
}
