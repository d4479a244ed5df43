package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/assignment"
	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
)

type AssignmentHttpHandler struct {
	srvc   *assignment.AssignmentSrvc
	JwtKey []byte
}

func NewAssignmentHttpHandler(srvc *assignment.AssignmentSrvc, jwtKey []byte) *AssignmentHttpHandler {
	return &AssignmentHttpHandler{
		srvc:   srvc,
		JwtKey: jwtKey,
	}
}

func (h *AssignmentHttpHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.GetJwtAuthMiddleware(h.JwtKey))
		r.Get("/assignments", h.List)
		r.Post("/assignments", h.Create)
		r.Get("/my-assignments", h.ListMine)
		r.Get("/assignments/{assignmentId}", h.Get)
		r.Put("/assignments/{assignmentId}", h.Update)
		r.Delete("/assignments/{assignmentId}", h.Delete)
	})
}

func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, srvcerr.New(
			"invalid_id",
			name+" is not a valid id",
		).SetHttpStatusCode(http.StatusBadRequest).SetDebug(err)
	}
	return id, nil
}
