package middleware

import (
	"net/http"

	"hospital-backend/internal/domain/entity"
	"hospital-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

// RequireRole allows the request through only when the authenticated role is
// in the allowed set. The comparison is case-insensitive to tolerate
// unnormalized roles on older records. Denials are logged with the attempted
// identity and role for audit.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Role information not found")
				return
			}

			allowed := false
			for _, allowedRole := range allowedRoles {
				if role.Equals(allowedRole) {
					allowed = true
					break
				}
			}

			if !allowed {
				userID, _ := GetUserIDFromContext(r.Context())
				logrus.Warnf("Access denied: user %s attempted %s %s with role %q", userID, r.Method, r.URL.Path, role)
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin is a convenience middleware for admin-only endpoints
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(entity.RoleAdmin)(next)
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}

// RequireStaff is a convenience middleware for staff-only endpoints
func RequireStaff(next http.Handler) http.Handler {
	return RequireRole(entity.RoleStaff)(next)
}
