package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

type AssignmentSrvc struct {
	repo  Repo
	subms SubmissionSource
}

func NewAssignmentSrvc(repo Repo, subms SubmissionSource) *AssignmentSrvc {
	return &AssignmentSrvc{repo: repo, subms: subms}
}

// View returns a single assignment. Teachers view through their owned
// listing; the detail endpoint is the student's.
func (s *AssignmentSrvc) View(ctx context.Context, p auth.Principal, id uuid.UUID) (*Assignment, error) {
	if err := auth.Require(p, auth.RoleStudent); err != nil {
		return nil, err
	}
	return s.resolve(ctx, id)
}

// Resolve fetches an assignment by id with not-found semantics. It is
// the lookup collaborating services use; it performs no authorization.
func (s *AssignmentSrvc) Resolve(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	return s.resolve(ctx, id)
}

func (s *AssignmentSrvc) resolve(ctx context.Context, id uuid.UUID) (*Assignment, error) {
	a, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}
	if a == nil {
		return nil, newErrAssignmentNotFound()
	}
	return a, nil
}
