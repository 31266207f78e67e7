package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const IdentityKey ctxKey = "identity"

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Authenticate admits requests whose Authorization header carries a valid
// token, raw or with a "Bearer " prefix, and stores the identity in the context.
func (m *AuthMiddleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeMessage(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		identity, err := m.verifier.Identity(token)
		if err != nil || identity == "" {
			m.logs.Warnw("rejected token",
				"error", err,
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()))
			writeMessage(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next(w, r.WithContext(ctx))
	}
}

func IdentityFromContext(ctx context.Context) string {
	identity, _ := ctx.Value(IdentityKey).(string)
	return identity
}
