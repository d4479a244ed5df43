package assignment

import (
	"time"

	"github.com/google/uuid"
)

type Assignment struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	CreatedAt   time.Time
	CreatedBy   uuid.UUID // owning teacher, immutable
}

// SubmStatus is the caller's own submission state for an assignment,
// shown in the student listing.
type SubmStatus string

const (
	StatusPending   SubmStatus = "pending"
	StatusSubmitted SubmStatus = "submitted"
	StatusGraded    SubmStatus = "graded"
)

// AnnotatedAssignment is an assignment together with the requesting
// student's submission status for it.
type AnnotatedAssignment struct {
	Assignment
	Status SubmStatus
}
