package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/stayloop/hotel-bookings/internal/domain"
	"github.com/stayloop/hotel-bookings/internal/http/response"
	"github.com/stayloop/hotel-bookings/pkg/auth"
	"github.com/stayloop/hotel-bookings/pkg/logger"
)

type ctxKey string

const ctxClaims ctxKey = "claims"

// Gate is the request-level authentication/authorization gate. Authenticate
// populates the claims context; the Require* checks read it and fail closed
// when it is absent.
type Gate struct {
	secret string
}

func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Authenticate verifies the bearer token and attaches the decoded claims to
// the request context. A missing credential is 401; a credential that fails
// verification for any reason (malformed, tampered, expired) is a single 403
// category.
func (g *Gate) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			response.Unauthorized(w, "unauthorized: no credential")
			return
		}

		raw := strings.TrimPrefix(authz, "Bearer ")
		claims, err := auth.Parse(raw, g.secret)
		if err != nil {
			response.Forbidden(w, "invalid or expired credential")
			return
		}

		ctx := context.WithValue(r.Context(), ctxClaims, claims)
		ctx = context.WithValue(ctx, logger.UserIDKey, claims.Sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin passes hotel-admins and super-admins.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := Claims(r)
		if claims == nil {
			response.Forbidden(w, "access denied: admins only")
			return
		}
		role, ok := domain.ParseRole(claims.Role)
		if !ok || !role.IsAdmin() {
			response.Forbidden(w, "access denied: admins only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSuperAdmin passes super-admins only.
func RequireSuperAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := Claims(r)
		if claims == nil || domain.Role(claims.Role) != domain.RoleSuperAdmin {
			response.Forbidden(w, "access denied: super-admins only")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Claims returns the decoded session claims for the request, or nil when
// Authenticate has not run.
func Claims(r *http.Request) *auth.Claims {
	v := r.Context().Value(ctxClaims)
	if v == nil {
		return nil
	}
	return v.(*auth.Claims)
}
