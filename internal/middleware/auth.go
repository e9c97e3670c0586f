package middleware

import (
	"net/http"
	"strings"

	"github.com/Shantanu039/hotel-menu-order-app/internal/auth"
	"github.com/Shantanu039/hotel-menu-order-app/pkg/utils"
)

type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// Authenticate verifies the bearer token and stores the caller identity in
// the request context. Requests without a valid token get 401.
func Authenticate(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.WriteError(w, "authorization required", http.StatusUnauthorized)
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				utils.WriteError(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}

// RequireAdmin gates admin-only routes. Must run after Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.ExtractIdentity(r.Context())
		if !ok {
			utils.WriteError(w, "authorization required", http.StatusUnauthorized)
			return
		}
		if !identity.IsAdmin() {
			utils.WriteError(w, "administrator access required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	// The original web client sent the token in a custom header.
	return r.Header.Get("X-Auth-Token")
}
