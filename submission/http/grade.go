package http

import (
	"encoding/json"
	"net/http"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
	"github.com/majdya/classroom-backend/logger"
)

func (h *SubmissionHttpHandler) Grade(w http.ResponseWriter, r *http.Request) {
	type gradeRequest struct {
		Grade    string `json:"grade"`
		Comments string `json:"comments"`
	}

	// identity first, so unauthenticated callers get 401 even with a
	// malformed body
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	submissionID, err := parseUUIDParam(r, "submissionId")
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	var request gradeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	subm, err := h.srvc.Grade(r.Context(), principal, submissionID, request.Grade, request.Comments)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapSubmission(*subm))
}
