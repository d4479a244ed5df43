package submission

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrDuplicate is returned by Store when a submission already exists
// for the (assignment, student) pair. In postgres this is raised by the
// unique index, which is the actual safety mechanism against concurrent
// submits; the service-level existence check is only an early exit.
var ErrDuplicate = errors.New("submission already exists for this assignment and student")

// Repo is persistent submission storage. Lookups return nil when no
// submission exists.
type Repo interface {
	Store(ctx context.Context, s Submission) error
	Get(ctx context.Context, id uuid.UUID) (*Submission, error)
	GetByPair(ctx context.Context, assignmentID, studentID uuid.UUID) (*Submission, error)
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]Submission, error)
	ListByAssignment(ctx context.Context, assignmentID uuid.UUID) ([]Submission, error)
	Update(ctx context.Context, s Submission) error
}
