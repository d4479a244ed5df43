package http

import (
	"net/http"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
	"github.com/majdya/classroom-backend/logger"
)

func (h *AssignmentHttpHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	a, err := h.srvc.View(r.Context(), principal, id)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, mapAssignment(*a))
}
