package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/playercore/go-auth-guard/principals"
	"github.com/playercore/go-auth-guard/token"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	// ContextKeySubjectID stores the authenticated principal's id
	ContextKeySubjectID ContextKey = "subject_id"
	// ContextKeyClaims stores the verified access token claims
	ContextKeyClaims ContextKey = "claims"
)

func ChainMiddleware(routeFunction http.HandlerFunc, mw ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	chainedHandler := routeFunction
	// Apply middleware in reverse order
	for i := len(mw) - 1; i >= 0; i-- {
		chainedHandler = mw[i](chainedHandler)
	}
	return chainedHandler
}

// RequireAccessToken validates the Bearer access token and injects the
// verified claims into the request context.
func (s *Server) RequireAccessToken() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			rawToken, ok := bearerToken(r)
			if !ok {
				writeAuthDenied(w, "missing_token")
				return
			}

			claims, err := s.tokens.Access.Verify(rawToken)
			if err != nil {
				writeAuthDenied(w, "invalid_token")
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySubjectID, claims.SubjectID)
			ctx = context.WithValue(ctx, ContextKeyClaims, claims)
			next(w, r.WithContext(ctx))
		}
	}
}

// RequireSuperAdmin refuses requests whose access token does not carry the
// super admin role. Must run after RequireAccessToken.
func (s *Server) RequireSuperAdmin() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ContextKeyClaims).(*token.Claims)
			if !ok || claims.Role != string(principals.RoleSuperAdmin) {
				writeAuthDenied(w, "forbidden")
				return
			}
			next(w, r)
		}
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
