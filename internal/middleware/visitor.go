package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"grocer-be/internal/auth"
	"grocer-be/internal/logger"
)

type contextKey string

const visitorIDKey contextKey = "visitorID"

// Visitor resolves the browsing context of the request from its signed
// cookie. A missing or invalid cookie starts a new browsing context.
func Visitor(tokens *auth.VisitorTokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			id, err := tokens.Parse(auth.ExtractVisitorToken(r))
			if err != nil {
				id = uuid.NewString()
				token, err := tokens.Issue(id)
				if err != nil {
					logger.FromCtx(ctx).Error("issue visitor token failed", zap.Error(err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, tokens.Cookie(token))
			}

			ctx = context.WithValue(ctx, visitorIDKey, id)
			ctx = logger.WithVisitorID(ctx, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func VisitorIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(visitorIDKey).(string)
	return id, ok && id != ""
}
