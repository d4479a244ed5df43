package submission

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

const maxContentLengthKB = 64

// Submit records a text submission. The sequence is: resolve the
// assignment, reject past-deadline, reject duplicates, insert. No row
// is ever created on a rejected submit; the repo's uniqueness guarantee
// covers the race between concurrent submits of the same student.
func (s *SubmissionSrvc) Submit(ctx context.Context, p auth.Principal, assignmentID uuid.UUID, content string) (*Submission, error) {
	if err := auth.Require(p, auth.RoleStudent); err != nil {
		return nil, err
	}

	if strings.TrimSpace(content) == "" {
		return nil, newErrInvalidSubmission("submission content must not be empty")
	}
	if len(content) > maxContentLengthKB*1024 {
		return nil, newErrInvalidSubmission("submission content is too long")
	}

	return s.submit(ctx, p, assignmentID, content, "")
}

func (s *SubmissionSrvc) submit(ctx context.Context, p auth.Principal, assignmentID uuid.UUID, content, fileName string) (*Submission, error) {
	a, err := s.assignments.Resolve(ctx, assignmentID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if now.After(a.DueDate) {
		return nil, newErrDeadlinePassed()
	}

	// early exit; the unique index catches the concurrent case
	existing, err := s.repo.GetByPair(ctx, assignmentID, p.SubjectID)
	if err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}
	if existing != nil {
		return nil, newErrDuplicateSubmission()
	}

	subm := Submission{
		ID:           uuid.New(),
		AssignmentID: assignmentID,
		StudentID:    p.SubjectID,
		Content:      content,
		FileName:     fileName,
		SubmittedAt:  now,
	}

	if err := s.repo.Store(ctx, subm); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, newErrDuplicateSubmission()
		}
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}

	return &subm, nil
}
