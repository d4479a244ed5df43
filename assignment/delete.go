package assignment

import (
	"context"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

// Delete removes an owned assignment. Deletion is restricted: an
// assignment with existing submissions cannot be deleted.
func (s *AssignmentSrvc) Delete(ctx context.Context, p auth.Principal, id uuid.UUID) error {
	if err := auth.Require(p, auth.RoleTeacher); err != nil {
		return err
	}

	a, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}

	if err := auth.RequireOwner(p, auth.RoleTeacher, a.CreatedBy); err != nil {
		return err
	}

	any, err := s.subms.AnyForAssignment(ctx, a.ID)
	if err != nil {
		return srvcerr.ErrInternalSE().SetDebug(err)
	}
	if any {
		return newErrAssignmentHasSubmissions()
	}

	if err := s.repo.Delete(ctx, a.ID); err != nil {
		return srvcerr.ErrInternalSE().SetDebug(err)
	}

	return nil
}
