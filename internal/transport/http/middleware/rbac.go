package middleware

import (
	"net/http"

	"luiza/internal/domain/auth"
	"luiza/internal/transport/http/api"
)

// RequireRole admits only callers whose role is in the allowed set. Roles
// are a fixed enum, so checks are in-memory rather than store-backed.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := GetUser(r.Context())
			if !ok {
				api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", GetRequestID(r.Context()))
				return
			}
			if _, ok := allowedSet[user.Role]; !ok {
				api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", GetRequestID(r.Context()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole(auth.AdminRoles...)(next)
}

func RequireEvaluator(next http.Handler) http.Handler {
	return RequireRole(auth.EvaluatorRoles...)(next)
}
