package paging

import (
	"fmt"
	"net/http"

	"github.com/majdya/classroom-backend/srvcerr"
)

const ErrCodeInvalidPagingParam = "invalid_paging_param"

func newErrInvalidPagingParam(name, value string) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidPagingParam,
		fmt.Sprintf("%s must be a positive integer, got %q", name, value),
	).SetHttpStatusCode(http.StatusBadRequest)
}
