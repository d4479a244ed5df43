package submission

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

const maxGradeLength = 3

// Grade transitions a submission to graded: grade, graded-at and
// graded-by are set together. Only the teacher who created the
// submission's assignment may grade, and re-grading overwrites under
// the same rule. Nothing is touched when validation fails.
func (s *SubmissionSrvc) Grade(ctx context.Context, p auth.Principal, submissionID uuid.UUID, grade, comments string) (*Submission, error) {
	if err := auth.Require(p, auth.RoleTeacher); err != nil {
		return nil, err
	}

	if grade == "" || len(grade) > maxGradeLength {
		return nil, newErrInvalidGrade(maxGradeLength)
	}

	subm, err := s.repo.Get(ctx, submissionID)
	if err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}
	if subm == nil {
		return nil, newErrSubmissionNotFound()
	}

	a, err := s.assignments.Resolve(ctx, subm.AssignmentID)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(p, auth.RoleTeacher, a.CreatedBy); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	subm.Grade = grade
	subm.GradedAt = &now
	subm.GradedBy = &p.SubjectID
	subm.Comments = comments

	if err := s.repo.Update(ctx, *subm); err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}

	return subm, nil
}
