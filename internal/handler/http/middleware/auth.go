package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workplanner/workplanner-backend-go/internal/handler/http/response"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/jwt"
)

// AuthRequired rejects requests without a verified access token carrying a numeric user_id.
// It expects jwtauth.Verifier to run first.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Unauthorized")
				return
			}

			if jwt.StringClaim(claims, "type") != jwt.TokenTypeAccess {
				response.Unauthorized(w, "Invalid token")
				return
			}

			if _, err := jwt.UserIDFromClaims(claims); err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
