package http

import (
	"net/http"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
	"github.com/majdya/classroom-backend/logger"
	"github.com/majdya/classroom-backend/paging"
)

func (h *AssignmentHttpHandler) List(w http.ResponseWriter, r *http.Request) {
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

	items, total, err := h.srvc.List(r.Context(), principal, params)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	mapped := make([]AnnotatedAssignment, 0, len(items))
	for _, a := range items {
		mapped = append(mapped, mapAnnotated(a))
	}

	httpjson.WriteSuccessJson(w, httpjson.ListData{
		Items:      mapped,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: paging.TotalPages(total, params.PageSize),
	})
}

func (h *AssignmentHttpHandler) ListMine(w http.ResponseWriter, r *http.Request) {
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

	items, total, err := h.srvc.ListMine(r.Context(), principal, params)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	mapped := make([]Assignment, 0, len(items))
	for _, a := range items {
		mapped = append(mapped, mapAssignment(a))
	}

	httpjson.WriteSuccessJson(w, httpjson.ListData{
		Items:      mapped,
		Total:      total,
		Page:       params.Page,
		PageSize:   params.PageSize,
		TotalPages: paging.TotalPages(total, params.PageSize),
	})
}
