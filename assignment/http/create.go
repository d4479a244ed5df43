package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/majdya/classroom-backend/assignment"
	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
	"github.com/majdya/classroom-backend/logger"
)

func (h *AssignmentHttpHandler) Create(w http.ResponseWriter, r *http.Request) {
	type createRequest struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		DueDate     time.Time `json:"dueDate"`
	}

	// identity first, so unauthenticated callers get 401 even with a
	// malformed body
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	var request createRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	a, err := h.srvc.Create(r.Context(), principal, assignment.CreateAssignmentParams{
		Title:       request.Title,
		Description: request.Description,
		DueDate:     request.DueDate,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapAssignment(*a))
}
