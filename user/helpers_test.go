package user_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majdya/classroom-backend/user"
	userhttp "github.com/majdya/classroom-backend/user/http"
)

var testJwtKey = []byte("test")

func setupUserHttpHandler(t *testing.T) http.Handler {
	t.Helper()
	userSrvc := user.NewUserSrvc(user.NewInMemRepo())
	userHandler := userhttp.NewUserHttpHandler(userSrvc, testJwtKey)
	router := chi.NewRouter()
	userHandler.RegisterRoutes(router)
	return router
}

func newJsonReq(method, path string, body map[string]interface{}) (*http.Request, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func register(t *testing.T, handler http.Handler, userData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req, err := newJsonReq(http.MethodPost, "/users", userData)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// login performs a user login request and returns the response
func login(t *testing.T, handler http.Handler, loginData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req, err := newJsonReq(http.MethodPost, "/auth/login", loginData)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user with the given role and returns a
// bearer token for it.
func registerAndLogin(t *testing.T, handler http.Handler, username, role string) string {
	t.Helper()
	w := register(t, handler, map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusOK, w.Code, "Registration failed: %s", w.Body.String())

	w = login(t, handler, map[string]interface{}{
		"username": username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, "Login failed: %s", w.Body.String())

	var responseWrapper struct {
		Status string `json:"status"`
		Data   string `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal login response body")
	require.NotEmpty(t, responseWrapper.Data, "No token in login response")
	return responseWrapper.Data
}

func getRole(t *testing.T, handler http.Handler, token string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/role", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "Role request failed: %s", w.Body.String())

	var responseWrapper struct {
		Status string `json:"status"`
		Data   struct {
			Role string `json:"role"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal role response body")
	return responseWrapper.Data.Role
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	// Check the response status code is not OK
	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	// Parse the error response
	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	// Check error response fields
	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}
