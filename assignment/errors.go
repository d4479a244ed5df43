package assignment

import (
	"net/http"

	"github.com/majdya/classroom-backend/srvcerr"
)

const ErrCodeInvalidAssignment = "invalid_assignment"

func newErrInvalidAssignment(reason string) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidAssignment,
		reason,
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeAssignmentNotFound = "assignment_not_found"

func newErrAssignmentNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeAssignmentNotFound,
		"assignment was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAssignmentHasSubmissions = "assignment_has_submissions"

func newErrAssignmentHasSubmissions() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeAssignmentHasSubmissions,
		"assignment has submissions and cannot be deleted",
	).SetHttpStatusCode(http.StatusConflict)
}
