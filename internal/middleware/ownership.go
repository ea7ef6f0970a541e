package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// RequireSelf ensures the {userID} path parameter matches the authenticated
// subject. Every per-user entity is private; there is no cross-user access.
func RequireSelf(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := GetUserID(r.Context())
			if !ok {
				logger.Warn("User id not found in context")
				RespondWithError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			if pathID := chi.URLParam(r, "userID"); pathID != userID {
				logger.Warn("User attempted to access another user's data",
					zap.String("user_id", userID),
					zap.String("path_user_id", pathID),
				)
				RespondWithError(w, http.StatusForbidden, "you can only access your own data")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
