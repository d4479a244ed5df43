package user

import (
	"context"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

type CreateUserParams struct {
	Username string
	Email    string
	Password string
	Role     string
}

func (s *UserSrvc) CreateUser(ctx context.Context, p CreateUserParams) (*User, error) {
	if err := validateUsername(p.Username); err != nil {
		return nil, err
	}
	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(p.Password); err != nil {
		return nil, err
	}
	role, err := auth.ParseRole(p.Role)
	if err != nil {
		return nil, newErrInvalidRole().SetDebug(err)
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}

	for _, u := range all {
		// username must be unique
		if u.Username == p.Username {
			return nil, newErrUsernameExists()
		}
		// email must be unique
		if u.Email == p.Email {
			return nil, newErrEmailExists()
		}
	}

	bcryptPwd, err := bcrypt.GenerateFromPassword(
		[]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}

	u := User{
		ID:        uuid.New(),
		Username:  p.Username,
		Email:     p.Email,
		Role:      role,
		BcryptPwd: string(bcryptPwd),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Store(ctx, u); err != nil {
		return nil, srvcerr.ErrInternalSE().SetDebug(err)
	}

	return &u, nil
}

func validateUsername(username string) error {
	const minUsernameLength = 2
	const maxUsernameLength = 32
	if len(username) < minUsernameLength {
		return newErrUsernameTooShort(minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return newErrUsernameTooLong()
	}
	return nil
}

func validateEmail(email string) error {
	const maxEmailLength = 320
	if len(email) > maxEmailLength {
		return newErrEmailTooLong()
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return newErrEmailInvalid()
	}
	return nil
}

func validatePassword(password string) error {
	const minPasswordLength = 8
	const maxPasswordLength = 1024
	if len(password) < minPasswordLength {
		return newErrPasswordTooShort(minPasswordLength)
	}
	if len(password) > maxPasswordLength {
		return newErrPasswordTooLong()
	}
	return nil
}
