package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/igextreme/agenda-service/internal/api/handlers"
)

// AdminTokenHeader carries the token issued by the login endpoint.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth guards the admin subrouter: every request must present the
// configured token.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if token == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, "credenciais inválidas")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
