package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/srvcerr"
	"github.com/majdya/classroom-backend/submission"
)

type SubmissionHttpHandler struct {
	srvc   *submission.SubmissionSrvc
	JwtKey []byte
}

func NewSubmissionHttpHandler(srvc *submission.SubmissionSrvc, jwtKey []byte) *SubmissionHttpHandler {
	return &SubmissionHttpHandler{
		srvc:   srvc,
		JwtKey: jwtKey,
	}
}

func (h *SubmissionHttpHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.GetJwtAuthMiddleware(h.JwtKey))
		r.Post("/assignments/{assignmentId}/submit", h.Submit)
		r.Post("/assignments/{assignmentId}/submit-file", h.SubmitFile)
		r.Get("/assignments/{assignmentId}/submissions", h.ListForAssignment)
		r.Get("/my-submissions", h.ListMine)
		r.Get("/grades", h.ListGrades)
		r.Put("/submissions/{submissionId}/grade", h.Grade)
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
