package common

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type contextKey string

const claimsKey contextKey = "auth-claims"

// AuthMiddleware validates the bearer token and injects the caller identity
// into the request context. Everything behind it can assume CallerFromContext
// succeeds.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			WriteError(w, NewApiError(KindUnauthorized, "authorization required"))
			return
		}

		// header = Bearer <token>
		parts := strings.Fields(header)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			WriteError(w, NewApiError(KindUnauthorized, "invalid authorization header"))
			return
		}

		claims, err := ValidAccessToken(parts[1])
		if err != nil {
			WriteError(w, NewApiError(KindUnauthorized, "invalid or expired token"))
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CallerFromContext returns the authenticated caller's claims, nil when the
// request skipped the auth middleware.
func CallerFromContext(ctx context.Context) *Claims {
	claims, _ := ctx.Value(claimsKey).(*Claims)
	return claims
}

// ContextWithCaller is for tests and internal calls that need a caller
// identity without going through the middleware.
func ContextWithCaller(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// RequestLogger logs method, path, and latency for every request.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"latency": time.Since(start).String(),
		}).Info("request handled")
	})
}
