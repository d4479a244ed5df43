package http

import (
	"net/http"

	"github.com/majdya/classroom-backend/auth"
	"github.com/majdya/classroom-backend/httpjson"
)

// GetRole returns the role of the currently logged-in user
func (h *UserHttpHandler) GetRole(w http.ResponseWriter, r *http.Request) {
	type RoleResponse struct {
		Role string `json:"role"`
	}

	// If no claims (not logged in), the caller is a guest
	principal, err := auth.PrincipalFromContext(r.Context())
	if err != nil {
		httpjson.WriteSuccessJson(w, RoleResponse{Role: "guest"})
		return
	}

	httpjson.WriteSuccessJson(w, RoleResponse{Role: string(principal.Role)})
}
