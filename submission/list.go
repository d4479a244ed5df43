package submission

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/paging"
	"github.com/majdya/classroom-backend/srvcerr"
)

// ListForStudent returns the caller's own submissions, newest first.
func (s *SubmissionSrvc) ListForStudent(ctx context.Context, p auth.Principal, params paging.Params) ([]Submission, int, error) {
	if err := auth.Require(p, auth.RoleStudent); err != nil {
		return nil, 0, err
	}
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	all, err := s.repo.ListByStudent(ctx, p.SubjectID)
	if err != nil {
		return nil, 0, srvcerr.ErrInternalSE().SetDebug(err)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].SubmittedAt.After(all[j].SubmittedAt)
	})

	return paging.Slice(all, params), len(all), nil
}

// ListGraded returns the graded subset of the caller's submissions,
// most recently graded first.
func (s *SubmissionSrvc) ListGraded(ctx context.Context, p auth.Principal, params paging.Params) ([]Submission, int, error) {
	if err := auth.Require(p, auth.RoleStudent); err != nil {
		return nil, 0, err
	}
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	all, err := s.repo.ListByStudent(ctx, p.SubjectID)
	if err != nil {
		return nil, 0, srvcerr.ErrInternalSE().SetDebug(err)
	}

	var graded []Submission
	for _, subm := range all {
		if subm.Graded() {
			graded = append(graded, subm)
		}
	}

	sort.Slice(graded, func(i, j int) bool {
		return graded[i].GradedAt.After(*graded[j].GradedAt)
	})

	return paging.Slice(graded, params), len(graded), nil
}

// ListForAssignment returns every submission to an assignment for its
// owning teacher, newest first.
func (s *SubmissionSrvc) ListForAssignment(ctx context.Context, p auth.Principal, assignmentID uuid.UUID, params paging.Params) ([]Submission, int, error) {
	if err := auth.Require(p, auth.RoleTeacher); err != nil {
		return nil, 0, err
	}
	if err := params.Validate(); err != nil {
		return nil, 0, err
	}

	a, err := s.assignments.Resolve(ctx, assignmentID)
	if err != nil {
		return nil, 0, err
	}

	if err := auth.RequireOwner(p, auth.RoleTeacher, a.CreatedBy); err != nil {
		return nil, 0, err
	}

	all, err := s.repo.ListByAssignment(ctx, a.ID)
	if err != nil {
		return nil, 0, srvcerr.ErrInternalSE().SetDebug(err)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].SubmittedAt.After(all[j].SubmittedAt)
	})

	return paging.Slice(all, params), len(all), nil
}
