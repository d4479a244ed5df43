// Package srvcerr defines the error type services return. Each error
// carries a stable machine-readable code, a message safe to show the
// user, and optionally a private debug error and an HTTP status.
package srvcerr

import "net/http"

type Error struct {
	code   string
	msg    string // shown to the user
	debug  error  // never shown to the user
	status int    // zero means internal server error
}

func New(code string, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) ErrorCode() string {
	return e.code
}

func (e *Error) DebugInfo() error {
	return e.debug
}

// SetDebug attaches context for logs. It is not part of the response.
func (e *Error) SetDebug(err error) *Error {
	e.debug = err
	return e
}

func (e *Error) HttpStatusCode() int {
	if e.status == 0 {
		return http.StatusInternalServerError
	}
	return e.status
}

func (e *Error) SetHttpStatusCode(code int) *Error {
	e.status = code
	return e
}

const ErrCodeInternalServerError = "internal_server_error"

func ErrInternalSE() *Error {
	return New(
		ErrCodeInternalServerError,
		"internal server error",
	).SetHttpStatusCode(http.StatusInternalServerError)
}
