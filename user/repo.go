package user

import (
	"context"

	"github.com/google/uuid"
)

// Repo is persistent user storage. Get returns nil when no user exists.
type Repo interface {
	Store(ctx context.Context, u User) error
	Get(ctx context.Context, id uuid.UUID) (*User, error)
	List(ctx context.Context) ([]User, error)
}
