package http

import (
	"context"
	"net/http"

	"github.com/openarchief/vernietiging/pkg/domain/types"
)

type actorCtxKey struct{}

// actorMiddleware extracts the acting user from the X-User-ID header set by
// the authenticating proxy. Requests without it are rejected.
func actorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get("X-User-ID")
		if userID == "" {
			http.Error(w, "missing X-User-ID header", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), actorCtxKey{}, types.UserID(userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func actorFrom(ctx context.Context) types.UserID {
	if userID, ok := ctx.Value(actorCtxKey{}).(types.UserID); ok {
		return userID
	}
	return ""
}
