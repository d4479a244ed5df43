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

func (h *AssignmentHttpHandler) Update(w http.ResponseWriter, r *http.Request) {
	type updateRequest struct {
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

	id, err := parseUUIDParam(r, "assignmentId")
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	var request updateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	a, err := h.srvc.Update(r.Context(), principal, id, assignment.CreateAssignmentParams{
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
