package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
)

type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      auth.Role
	BcryptPwd string
	CreatedAt time.Time
}
