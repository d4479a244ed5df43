package http

import (
	"net/http"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
	"github.com/majdya/classroom-backend/logger"
)

func (h *AssignmentHttpHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	if err := h.srvc.Delete(r.Context(), principal, id); err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessMsgJson(w, nil, "assignment deleted")
}
