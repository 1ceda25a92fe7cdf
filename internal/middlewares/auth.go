package middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-parent-profile/internal/logger"
	"github.com/sbilibin2017/gw-parent-profile/internal/services"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// IdentityResolver turns a session token into the id of the calling parent.
type IdentityResolver interface {
	CurrentParentID(ctx context.Context, token string) (int64, error)
}

type parentIDKey struct{}

// AuthMiddleware rejects requests without a valid session token and stores
// the caller's parent id in the request context.
func AuthMiddleware(tokener Tokener, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Warnw("authorization failed", "err", err)
				writeUnauthorized(w, "Not authenticated")
				return
			}

			parentID, err := resolver.CurrentParentID(ctx, tokenString)
			if err != nil {
				if errors.Is(err, services.ErrUnauthorized) {
					logger.Log.Warnw("authorization failed", "err", err)
					writeUnauthorized(w, services.ErrUnauthorized.Message)
					return
				}
				logger.Log.Errorw("failed to resolve caller", "err", err)
				writeInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, parentIDKey{}, parentID)))
		})
	}
}

// ParentIDFromContext returns the caller id stored by AuthMiddleware.
func ParentIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(parentIDKey{}).(int64)
	return id, ok
}

// WithParentID returns a copy of ctx carrying parentID as the caller id.
func WithParentID(ctx context.Context, parentID int64) context.Context {
	return context.WithValue(ctx, parentIDKey{}, parentID)
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"detail": msg})
}
