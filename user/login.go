package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/majdya/classroom-backend/srvcerr"
)

func (s *UserSrvc) Login(ctx context.Context, username string, password string) (*User, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		errMsg := fmt.Errorf("error listing users: %w", err)
		return nil, srvcerr.ErrInternalSE().SetDebug(errMsg)
	}

	for _, u := range all {
		if u.Username == username {
			err = bcrypt.CompareHashAndPassword([]byte(u.BcryptPwd), []byte(password))
			if err == nil {
				found := u
				return &found, nil
			}
		}
	}

	return nil, newErrUsernameOrPasswordIncorrect()
}
