package http

import (
	"time"

	"github.com/majdya/classroom-backend/submission"
)

type Submission struct {
	ID           string     `json:"id"`
	AssignmentID string     `json:"assignmentId"`
	StudentID    string     `json:"studentId"`
	Content      string     `json:"content"`
	FileName     string     `json:"fileName,omitempty"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Grade        string     `json:"grade,omitempty"`
	GradedAt     *time.Time `json:"gradedAt,omitempty"`
	GradedBy     string     `json:"gradedBy,omitempty"`
	Comments     string     `json:"comments,omitempty"`
}

func mapSubmission(s submission.Submission) Submission {
	res := Submission{
		ID:           s.ID.String(),
		AssignmentID: s.AssignmentID.String(),
		StudentID:    s.StudentID.String(),
		Content:      s.Content,
		FileName:     s.FileName,
		SubmittedAt:  s.SubmittedAt,
		Grade:        s.Grade,
		GradedAt:     s.GradedAt,
		Comments:     s.Comments,
	}
	if s.GradedBy != nil {
		res.GradedBy = s.GradedBy.String()
	}
	return res
}

func mapSubmissions(subms []submission.Submission) []Submission {
	mapped := make([]Submission, 0, len(subms))
	for _, s := range subms {
		mapped = append(mapped, mapSubmission(s))
	}
	return mapped
}
