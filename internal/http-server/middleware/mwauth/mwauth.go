package mwauth

import (
	"log/slog"
	"net/http"
	"strings"

	"meetease/internal/identity"
	"meetease/internal/lib/api/response"

	"github.com/go-chi/render"
)

// IdentityProvider verifies a caller's credential.
type IdentityProvider interface {
	Identify(token string) (identity.Identity, error)
}

// New authenticates every request with a Bearer token and stores the
// resulting identity in the request context.
func New(log *slog.Logger, provider IdentityProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing bearer token"))
				return
			}

			id, err := provider.Identify(token)
			if err != nil {
				log.Debug("failed to identify caller", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.ToContext(r.Context(), id)))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireHost rejects callers whose role is not host.
func RequireHost(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := identity.FromContext(r.Context())
		if !ok || id.Role != identity.RoleHost {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("access denied"))
			return
		}

		next.ServeHTTP(w, r)
	})
}
