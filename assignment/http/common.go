package http

import (
	"time"

	"github.com/majdya/classroom-backend/assignment"
)

type Assignment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatedBy   string    `json:"createdBy"`
}

type AnnotatedAssignment struct {
	Assignment
	SubmissionStatus string `json:"submissionStatus"`
}

func mapAssignment(a assignment.Assignment) Assignment {
	return Assignment{
		ID:          a.ID.String(),
		Title:       a.Title,
		Description: a.Description,
		DueDate:     a.DueDate,
		CreatedAt:   a.CreatedAt,
		CreatedBy:   a.CreatedBy.String(),
	}
}

func mapAnnotated(a assignment.AnnotatedAssignment) AnnotatedAssignment {
	return AnnotatedAssignment{
		Assignment:       mapAssignment(a.Assignment),
		SubmissionStatus: string(a.Status),
	}
}
