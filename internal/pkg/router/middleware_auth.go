package router

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/claroapp/claro-api/internal/pkg/jwt"
)

// middlewareAuthentication is the per-request authentication gate.
//
// A bearer token, when present, is verified and its claims attached to the
// request context. A missing or invalid token does not fail the request by
// itself; the request proceeds as anonymous and the access policy decides
// whether that is enough for the path. This keeps exactly one 401 decision
// point and runs once, before any business handler.
func middlewareAuthentication(codec jwt.Codec, policy *Policy) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if parts := strings.Fields(r.Header.Get("Authorization")); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				claims, err := codec.Verify(parts[1])
				if err == nil {
					r = r.WithContext(jwt.SetAuth(r.Context(), claims))
				} else {
					slog.DebugContext(r.Context(), "bearer token rejected", "reason", err)
				}
			}

			if policy.Evaluate(r.URL.Path) == AccessAuthenticated && jwt.GetAuth(r.Context()) == nil {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
