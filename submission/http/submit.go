package http

import (
	"encoding/json"
	"net/http"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
	"github.com/majdya/classroom-backend/logger"
)

func (h *SubmissionHttpHandler) Submit(w http.ResponseWriter, r *http.Request) {
	type submitRequest struct {
		Content string `json:"content"`
	}

	// identity first, so unauthenticated callers get 401 even with a
	// malformed body
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	assignmentID, err := parseUUIDParam(r, "assignmentId")
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	var request submitRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	subm, err := h.srvc.Submit(r.Context(), principal, assignmentID, request.Content)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubmission(*subm))
}
