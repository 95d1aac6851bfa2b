package middleware

import (
	"context"
	"net/http"

	"github.com/bluespark/hospital-hr-backend-go/internal/domain/auth"
	"github.com/bluespark/hospital-hr-backend-go/internal/handler/http/response"
	"github.com/bluespark/hospital-hr-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type userIDKey struct{}

// Verifier decodes the bearer token from the Authorization header only, the same source
// AuthRequired checks for revocation.
func Verifier(jwtService jwt.Service) func(http.Handler) http.Handler {
	return jwtauth.Verify(jwtService.JWTAuth(), jwtauth.TokenFromHeader)
}

// AuthRequired rejects requests without a verified, unrevoked access token.
// It must run after Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, _ := claims["user_id"].(string)
			ctx := context.WithValue(r.Context(), userIDKey{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// UserIDFromContext returns the authenticated operator set by AuthRequired.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey{}).(string)
	return userID
}
