package submission_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitHttp(t *testing.T) {
	env := setupEnv(t)
	a := createAssignment(t, env, uuid.New(), time.Now().Add(24*time.Hour))
	studentID := uuid.New()

	subm := submit(t, env, studentID, a.ID, "my essay text")

	assert.NotEmpty(t, subm.ID)
	assert.Equal(t, a.ID.String(), subm.AssignmentID)
	assert.Equal(t, studentID.String(), subm.StudentID)
	assert.Equal(t, "my essay text", subm.Content)
	assert.False(t, subm.SubmittedAt.IsZero())
	assert.Empty(t, subm.Grade)
	assert.Nil(t, subm.GradedAt)
}

func TestSubmitHttpDuplicate(t *testing.T) {
	env := setupEnv(t)
	a := createAssignment(t, env, uuid.New(), time.Now().Add(24*time.Hour))
	studentID := uuid.New()

	first := submit(t, env, studentID, a.ID, "first attempt")

	// one submission per student per assignment
	w := doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+a.ID.String()+"/submit",
		studentToken(t, studentID),
		map[string]interface{}{"content": "second attempt"})
	assertErrorInHttpResponse(t, w, "duplicate_submission")
	assert.Equal(t, http.StatusConflict, w.Code)

	// the first submission is left untouched
	w = doJsonReq(t, env.handler, http.MethodGet, "/my-submissions", studentToken(t, studentID), nil)
	data, items := parseSubmissionList(t, w)
	assert.Equal(t, 1, data.Total)
	require.Len(t, items, 1)
	assert.Equal(t, first.ID, items[0].ID)
	assert.Equal(t, "first attempt", items[0].Content)
	assert.True(t, first.SubmittedAt.Equal(items[0].SubmittedAt))

	// a different student may still submit
	subm := submit(t, env, uuid.New(), a.ID, "other student's essay")
	assert.NotEmpty(t, subm.ID)
}

func TestSubmitHttpDeadlinePassed(t *testing.T) {
	env := setupEnv(t)
	a := createAssignment(t, env, uuid.New(), time.Now().Add(-time.Hour))

	w := doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+a.ID.String()+"/submit",
		studentToken(t, uuid.New()),
		map[string]interface{}{"content": "too late"})
	assertErrorInHttpResponse(t, w, "deadline_passed")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitHttpAssignmentNotFound(t *testing.T) {
	env := setupEnv(t)

	w := doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+uuid.NewString()+"/submit",
		studentToken(t, uuid.New()),
		map[string]interface{}{"content": "essay"})
	assertErrorInHttpResponse(t, w, "assignment_not_found")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitHttpValidation(t *testing.T) {
	env := setupEnv(t)
	a := createAssignment(t, env, uuid.New(), time.Now().Add(24*time.Hour))
	token := studentToken(t, uuid.New())

	// empty content
	w := doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+a.ID.String()+"/submit", token,
		map[string]interface{}{"content": "   "})
	assertErrorInHttpResponse(t, w, "invalid_submission")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// oversized content
	w = doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+a.ID.String()+"/submit", token,
		map[string]interface{}{"content": strings.Repeat("x", 65*1024)})
	assertErrorInHttpResponse(t, w, "invalid_submission")
}

func TestSubmitHttpMalformedBodyUnauthenticated(t *testing.T) {
	env := setupEnv(t)
	a := createAssignment(t, env, uuid.New(), time.Now().Add(24*time.Hour))

	// the identity check runs before body parsing: no token plus a
	// malformed body is 401, not 400
	req := httptest.NewRequest(http.MethodPost,
		"/assignments/"+a.ID.String()+"/submit",
		strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.handler.ServeHTTP(w, req)

	assertErrorInHttpResponse(t, w, "unauthenticated")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitHttpRequiresStudent(t *testing.T) {
	env := setupEnv(t)
	teacherID := uuid.New()
	a := createAssignment(t, env, teacherID, time.Now().Add(24*time.Hour))
	body := map[string]interface{}{"content": "essay"}

	w := doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+a.ID.String()+"/submit", teacherToken(t, teacherID), body)
	assertErrorInHttpResponse(t, w, "forbidden_role")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+a.ID.String()+"/submit", "", body)
	assertErrorInHttpResponse(t, w, "unauthenticated")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
