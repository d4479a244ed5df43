package http

import (
	"github.com/go-chi/chi/v5"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/user"
)

type UserHttpHandler struct {
	userSrvc *user.UserSrvc
	JwtKey   []byte
}

func NewUserHttpHandler(userSrvc *user.UserSrvc, jwtKey []byte) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc: userSrvc,
		JwtKey:   jwtKey,
	}
}

func (h *UserHttpHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.GetJwtAuthMiddleware(h.JwtKey))
		r.Post("/users", h.Register)
		r.Post("/auth/login", h.Login)
		r.Get("/whoami", h.WhoAmI)
		r.Get("/role", h.GetRole)
	})
}
