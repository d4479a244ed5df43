package submission

import (
	"context"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/assignment"
)

// statusSource exposes submission storage to the assignment service as
// its assignment.SubmissionSource: status annotation for the student
// listing and the delete restriction.
type statusSource struct {
	repo Repo
}

func NewStatusSource(repo Repo) assignment.SubmissionSource {
	return statusSource{repo: repo}
}

// StatusFor implements assignment.SubmissionSource.
func (s statusSource) StatusFor(ctx context.Context, assignmentID, studentID uuid.UUID) (assignment.SubmStatus, error) {
	subm, err := s.repo.GetByPair(ctx, assignmentID, studentID)
	if err != nil {
		return "", err
	}
	if subm == nil {
		return assignment.StatusPending, nil
	}
	if subm.Graded() {
		return assignment.StatusGraded, nil
	}
	return assignment.StatusSubmitted, nil
}

// AnyForAssignment implements assignment.SubmissionSource.
func (s statusSource) AnyForAssignment(ctx context.Context, assignmentID uuid.UUID) (bool, error) {
	subms, err := s.repo.ListByAssignment(ctx, assignmentID)
	if err != nil {
		return false, err
	}
	return len(subms) > 0, nil
}
