package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/srvcerr"
)

type UserSrvc struct {
	repo Repo
}

func NewUserSrvc(repo Repo) *UserSrvc {
	return &UserSrvc{repo: repo}
}

func (s *UserSrvc) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}
	if u == nil {
		return nil, newErrUserNotFound()
	}
	return u, nil
}
