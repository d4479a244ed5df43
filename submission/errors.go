package submission

import (
	"fmt"
	"net/http"

	"github.com/majdya/classroom-backend/srvcerr"
)

const ErrCodeSubmissionNotFound = "submission_not_found"

func newErrSubmissionNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeSubmissionNotFound,
		"submission was not found",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeDeadlinePassed = "deadline_passed"

func newErrDeadlinePassed() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeDeadlinePassed,
		"assignment submission deadline has passed",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeDuplicateSubmission = "duplicate_submission"

func newErrDuplicateSubmission() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeDuplicateSubmission,
		"you have already submitted for this assignment",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeInvalidGrade = "invalid_grade"

func newErrInvalidGrade(maxGradeLength int) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidGrade,
		fmt.Sprintf("grade must be between 1 and %d characters", maxGradeLength),
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidSubmission = "invalid_submission"

func newErrInvalidSubmission(reason string) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidSubmission,
		reason,
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeInvalidFile = "invalid_file"

func newErrInvalidFile(reason string) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidFile,
		reason,
	).SetHttpStatusCode(http.StatusBadRequest)
}
