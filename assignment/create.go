package assignment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

type CreateAssignmentParams struct {
	Title       string
	Description string
	DueDate     time.Time
}

func (p CreateAssignmentParams) validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return newErrInvalidAssignment("title must not be empty")
	}
	if strings.TrimSpace(p.Description) == "" {
		return newErrInvalidAssignment("description must not be empty")
	}
	if p.DueDate.IsZero() {
		return newErrInvalidAssignment("due date is required")
	}
	return nil
}

func (s *AssignmentSrvc) Create(ctx context.Context, p auth.Principal, params CreateAssignmentParams) (*Assignment, error) {
	if err := auth.Require(p, auth.RoleTeacher); err != nil {
		return nil, err
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	a := Assignment{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		DueDate:     params.DueDate.UTC(),
		CreatedAt:   time.Now().UTC(),
		CreatedBy:   p.SubjectID,
	}

	if err := s.repo.Store(ctx, a); err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}

	return &a, nil
}
