package delivery

import (
	"net/http"
	"strings"

	"github.com/lowtide-records/label-api/internal/ports"
)

// AuthMiddleware guards the admin routes with a bearer token issued by
// the login endpoint.
func AuthMiddleware(auth ports.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token := strings.TrimPrefix(header, "Bearer ")
			if token == "" || token == header {
				writeError(w, http.StatusUnauthorized, "missing token", nil)
				return
			}

			ok, _ := auth.ValidateToken(r.Context(), token)
			if !ok {
				writeError(w, http.StatusUnauthorized, "invalid token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
