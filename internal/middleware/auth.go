// Package middleware contains http middlewares of the service.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/campusconnect/campus/internal/api"
	"github.com/campusconnect/campus/internal/auth"
)

type accountIDKey struct{}

// Authenticated checks Authorization bearer token and puts account id into the request context.
func Authenticated(tokens auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if !strings.HasPrefix(h, "Bearer ") {
				api.WriteError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			id, err := tokens.Parse(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
			if err != nil {
				api.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAccountID(r.Context(), id)))
		})
	}
}

// WithAccountID returns context carrying account id.
func WithAccountID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, accountIDKey{}, id)
}

// AccountID returns authenticated account id from context.
func AccountID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(accountIDKey{}).(int64)
	return id, ok
}
