package assignment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majdya/classroom-backend/assignment"
	asghttp "github.com/majdya/classroom-backend/assignment/http"
	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/submission"
)

var testJwtKey = []byte("test")

type testEnv struct {
	handler  http.Handler
	srvc     *assignment.AssignmentSrvc
	submRepo submission.Repo
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	submRepo := submission.NewInMemRepo()
	srvc := assignment.NewAssignmentSrvc(
		assignment.NewInMemRepo(),
		submission.NewStatusSource(submRepo),
	)
	handler := asghttp.NewAssignmentHttpHandler(srvc, testJwtKey)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return &testEnv{handler: router, srvc: srvc, submRepo: submRepo}
}

func teacherToken(t *testing.T, id uuid.UUID) string {
	t.Helper()
	token, err := auth.GenerateJWT("teacher1", auth.RoleTeacher, id, testJwtKey)
	require.NoError(t, err)
	return token
}

func studentToken(t *testing.T, id uuid.UUID) string {
	t.Helper()
	token, err := auth.GenerateJWT("student1", auth.RoleStudent, id, testJwtKey)
	require.NoError(t, err)
	return token
}

func doJsonReq(t *testing.T, handler http.Handler, method, path, token string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// createAssignment seeds an assignment through the service as the
// given teacher.
func createAssignment(t *testing.T, env *testEnv, teacherID uuid.UUID, title string, due time.Time) assignment.Assignment {
	t.Helper()
	p := auth.Principal{SubjectID: teacherID, Role: auth.RoleTeacher}
	a, err := env.srvc.Create(context.Background(), p, assignment.CreateAssignmentParams{
		Title:       title,
		Description: "description of " + title,
		DueDate:     due,
	})
	require.NoError(t, err)
	return *a
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()
	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}

// listData mirrors the paginated list envelope.
type listData struct {
	Items      json.RawMessage `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

func parseListResponse(t *testing.T, w *httptest.ResponseRecorder) listData {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string   `json:"status"`
		Data   listData `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal list response body")
	require.Equal(t, "success", responseWrapper.Status)
	return responseWrapper.Data
}
