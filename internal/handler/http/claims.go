package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/workplanner/workplanner-backend-go/internal/pkg/jwt"
)

// currentUserID reads the authenticated user's id from the verified token
func currentUserID(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, err
	}
	return jwt.UserIDFromClaims(claims)
}
