package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/pointago/pointage-backend-go/internal/domain/user"
	"github.com/pointago/pointage-backend-go/internal/handler/http/response"
)

// RequireValidator requires RH or DG role. Route-level gating only; the
// services re-check the actor's role at their own boundary.
func RequireValidator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrRHAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrRHAccessRequired)
			return
		}

		if !user.Role(roleStr).CanValidate() {
			response.HandleError(w, user.ErrRHAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
