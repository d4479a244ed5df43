package submission_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majdya/classroom-backend/assignment"
	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/s3blob"
	"github.com/majdya/classroom-backend/submission"
	submhttp "github.com/majdya/classroom-backend/submission/http"
)

var testJwtKey = []byte("test")

type testEnv struct {
	handler  http.Handler
	srvc     *submission.SubmissionSrvc
	asgSrvc  *assignment.AssignmentSrvc
	submRepo submission.Repo
	blobs    *s3blob.InMemBlob
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	submRepo := submission.NewInMemRepo()
	asgSrvc := assignment.NewAssignmentSrvc(
		assignment.NewInMemRepo(),
		submission.NewStatusSource(submRepo),
	)
	blobs := s3blob.NewInMemBlob()
	srvc := submission.NewSubmissionSrvc(submRepo, asgSrvc, blobs)
	handler := submhttp.NewSubmissionHttpHandler(srvc, testJwtKey)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return &testEnv{handler: router, srvc: srvc, asgSrvc: asgSrvc, submRepo: submRepo, blobs: blobs}
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

// doFileReq uploads content as a multipart form file.
func doFileReq(t *testing.T, handler http.Handler, path, token, fileName string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func createAssignment(t *testing.T, env *testEnv, teacherID uuid.UUID, due time.Time) assignment.Assignment {
	t.Helper()
	p := auth.Principal{SubjectID: teacherID, Role: auth.RoleTeacher}
	a, err := env.asgSrvc.Create(context.Background(), p, assignment.CreateAssignmentParams{
		Title:       "Essay",
		Description: "Write an essay",
		DueDate:     due,
	})
	require.NoError(t, err)
	return *a
}

// submissionDTO mirrors the submission response shape.
type submissionDTO struct {
	ID           string     `json:"id"`
	AssignmentID string     `json:"assignmentId"`
	StudentID    string     `json:"studentId"`
	Content      string     `json:"content"`
	FileName     string     `json:"fileName"`
	SubmittedAt  time.Time  `json:"submittedAt"`
	Grade        string     `json:"grade"`
	GradedAt     *time.Time `json:"gradedAt"`
	GradedBy     string     `json:"gradedBy"`
	Comments     string     `json:"comments"`
}

func parseSubmissionResponse(t *testing.T, w *httptest.ResponseRecorder) submissionDTO {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status  string        `json:"status"`
		Message string        `json:"message"`
		Data    submissionDTO `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal submission response body")
	require.Equal(t, "success", responseWrapper.Status)
	require.NotEmpty(t, responseWrapper.Message)
	return responseWrapper.Data
}

// submit records a text submission for the student and returns it.
func submit(t *testing.T, env *testEnv, studentID, assignmentID uuid.UUID, content string) submissionDTO {
	t.Helper()
	w := doJsonReq(t, env.handler, http.MethodPost,
		"/assignments/"+assignmentID.String()+"/submit",
		studentToken(t, studentID),
		map[string]interface{}{"content": content})
	return parseSubmissionResponse(t, w)
}

type listData struct {
	Items      json.RawMessage `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	PageSize   int             `json:"pageSize"`
	TotalPages int             `json:"totalPages"`
}

func parseSubmissionList(t *testing.T, w *httptest.ResponseRecorder) (listData, []submissionDTO) {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, "Response body: %s", w.Body.String())

	var responseWrapper struct {
		Status string   `json:"status"`
		Data   listData `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal list response body")
	require.Equal(t, "success", responseWrapper.Status)

	var items []submissionDTO
	require.NoError(t, json.Unmarshal(responseWrapper.Data.Items, &items))
	return responseWrapper.Data, items
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
