package submission

import (
	"time"

	"github.com/google/uuid"
)

type Submission struct {
	ID           uuid.UUID
	AssignmentID uuid.UUID
	StudentID    uuid.UUID // immutable
	Content      string    // submitted text, or a blob reference for file submissions
	FileName     string    // original file name, empty for text submissions
	SubmittedAt  time.Time

	// grading fields, set together on the graded transition
	Grade    string
	GradedAt *time.Time
	GradedBy *uuid.UUID
	Comments string
}

// Graded requires both fields of the graded transition to be set. A row
// with a grade but no timestamp is treated as not graded, so callers may
// dereference GradedAt whenever Graded returns true.
func (s Submission) Graded() bool {
	return s.Grade != "" && s.GradedAt != nil
}
