package assignment

import (
	"context"
	"sort"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/paging"
	"github.com/majdya/classroom-backend/srvcerr"
)

// List returns the student's view of all assignments, ordered by due
// date, each annotated with the caller's own submission status.
func (s *AssignmentSrvc) List(ctx context.Context, p auth.Principal, params paging.Params) ([]AnnotatedAssignment, int, error) {
	if err := auth.Require(p, auth.RoleStudent); err != nil {
		return nil, 0, err
	}
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, srvcerr.ErrInternalSE().SetDebug(err)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].DueDate.Before(all[j].DueDate)
	})

	total := len(all)
	page := paging.Slice(all, params)

	annotated := make([]AnnotatedAssignment, 0, len(page))
	for _, a := range page {
		status, err := s.subms.StatusFor(ctx, a.ID, p.SubjectID)
		if err != nil {
			return nil, 0, srvcerr.ErrInternalSE().SetDebug(err)
		}
		annotated = append(annotated, AnnotatedAssignment{Assignment: a, Status: status})
	}

	return annotated, total, nil
}

// ListMine returns assignments created by the requesting teacher,
// newest first.
func (s *AssignmentSrvc) ListMine(ctx context.Context, p auth.Principal, params paging.Params) ([]Assignment, int, error) {
	if err := auth.Require(p, auth.RoleTeacher); err != nil {
		return nil, 0, err
	}
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	owned, err := s.repo.ListByCreator(ctx, p.SubjectID)
	if err != nil {
		return nil, 0, srvcerr.ErrInternalSE().SetDebug(err)
	}

	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	return paging.Slice(owned, params), len(owned), nil
}
