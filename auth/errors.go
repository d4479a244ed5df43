package auth

import (
	"fmt"
	"net/http"

	"github.com/majdya/classroom-backend/srvcerr"
)

const ErrCodeUnauthenticated = "unauthenticated"

func newErrUnauthenticated() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUnauthenticated,
		"user information is missing from the token",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeForbiddenRole = "forbidden_role"

func newErrForbiddenRole(required Role) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeForbiddenRole,
		fmt.Sprintf("this operation requires the %s role", required),
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeNotOwner = "not_resource_owner"

func newErrNotOwner() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeNotOwner,
		"you are not the owner of this resource",
	).SetHttpStatusCode(http.StatusForbidden)
}
