package http

import (
	"net/http"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
	"github.com/majdya/classroom-backend/logger"
	"github.com/majdya/classroom-backend/paging"
	"github.com/majdya/classroom-backend/submission"
)

func (h *SubmissionHttpHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	params, err := paging.FromRequest(r)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	items, total, err := h.srvc.ListForStudent(r.Context(), principal, params)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeSubmissionList(w, items, total, params)
}

func (h *SubmissionHttpHandler) ListGrades(w http.ResponseWriter, r *http.Request) {
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	params, err := paging.FromRequest(r)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	items, total, err := h.srvc.ListGraded(r.Context(), principal, params)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeSubmissionList(w, items, total, params)
}

func (h *SubmissionHttpHandler) ListForAssignment(w http.ResponseWriter, r *http.Request) {
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

	params, err := paging.FromRequest(r)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	items, total, err := h.srvc.ListForAssignment(r.Context(), principal, assignmentID, params)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	writeSubmissionList(w, items, total, params)
}

func writeSubmissionList(w http.ResponseWriter, items []submission.Submission, total int, params paging.Params) {
	httpjson.WriteSuccessJson(w, httpjson.ListData{
		Items:      mapSubmissions(items),
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: paging.TotalPages(total, params.PageSize),
	})
}
