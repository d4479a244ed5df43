package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type inMemRepo struct {
	mu    sync.RWMutex
	users map[uuid.UUID]User
}

func NewInMemRepo() *inMemRepo {
	return &inMemRepo{
		users: make(map[uuid.UUID]User),
	}
}

// Store implements Repo
func (r *inMemRepo) Store(ctx context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

// Get implements Repo
func (r *inMemRepo) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// List implements Repo
func (r *inMemRepo) List(ctx context.Context) ([]User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]User, 0, len(r.users))
	for _, u := range r.users {
		all = append(all, u)
	}
	return all, nil
}
