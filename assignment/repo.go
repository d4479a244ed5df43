package assignment

import (
	"context"

	"github.com/google/uuid"
)

// Repo is persistent assignment storage. Get returns nil when no
// assignment exists.
type Repo interface {
	Store(ctx context.Context, a Assignment) error
	Get(ctx context.Context, id uuid.UUID) (*Assignment, error)
	List(ctx context.Context) ([]Assignment, error)
	ListByCreator(ctx context.Context, creator uuid.UUID) ([]Assignment, error)
	Update(ctx context.Context, a Assignment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubmissionSource is the narrow view of submission storage the
// assignment service needs: status annotation for the student listing
// and the delete restriction.
type SubmissionSource interface {
	StatusFor(ctx context.Context, assignmentID, studentID uuid.UUID) (SubmStatus, error)
	AnyForAssignment(ctx context.Context, assignmentID uuid.UUID) (bool, error)
}
