package submission

import (
	"context"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/assignment"
	"github.com/majdya/classroom-backend/s3blob"
)

// AssignmentSource resolves assignments with not-found semantics.
type AssignmentSource interface {
	Resolve(ctx context.Context, id uuid.UUID) (*assignment.Assignment, error)
}

type SubmissionSrvc struct {
	repo        Repo
	assignments AssignmentSource
	blobs       s3blob.Store
}

func NewSubmissionSrvc(repo Repo, assignments AssignmentSource, blobs s3blob.Store) *SubmissionSrvc {
	return &SubmissionSrvc{
		repo:        repo,
		assignments: assignments,
		blobs:       blobs,
	}
}
