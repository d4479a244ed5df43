package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

// Update mutates title, description and due date of an owned
// assignment. CreatedAt and CreatedBy are never touched.
func (s *AssignmentSrvc) Update(ctx context.Context, p auth.Principal, id uuid.UUID, params CreateAssignmentParams) (*Assignment, error) {
	if err := auth.Require(p, auth.RoleTeacher); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	a, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(p, auth.RoleTeacher, a.CreatedBy); err != nil {
		return nil, err
	}

	a.Title = params.Title
	a.Description = params.Description
	a.DueDate = params.DueDate.UTC()

	if err := s.repo.Update(ctx, *a); err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}

	return a, nil
}
