package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stratus-hr/hrd-backend-go/internal/handler/http/response"
)

const (
	RoleAdmin          = "admin"
	RoleDepartmentHead = "department_head"
	RoleEmployee       = "employee"
)

// RequireAdmin requires the admin role
func RequireAdmin(next http.Handler) http.Handler {
	return requireRole(next, RoleAdmin)
}

// RequireDepartmentHead requires department_head or admin
func RequireDepartmentHead(next http.Handler) http.Handler {
	return requireRole(next, RoleDepartmentHead, RoleAdmin)
}

func requireRole(next http.Handler, allowed ...string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		role, ok := claims["role"].(string)
		if !ok {
			response.Forbidden(w, "Insufficient permissions")
			return
		}

		for _, want := range allowed {
			if role == want {
				next.ServeHTTP(w, r)
				return
			}
		}
		response.Forbidden(w, "Insufficient permissions")
	})
}
