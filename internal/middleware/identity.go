package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/2beens/ironlog/internal/ironlog/api"

	log "github.com/sirupsen/logrus"
)

const DefaultUserHeader = "X-IronLog-User"

type usernameKey struct{}

func ContextWithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey{}, username)
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey{}).(string)
	return username, ok && username != ""
}

// Identity trusts the username set by the upstream auth proxy in userHeader.
// The caller's cookies are kept in the context and forwarded to the backend.
func Identity(userHeader string) func(next http.Handler) http.Handler {
	if userHeader == "" {
		userHeader = DefaultUserHeader
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username := strings.TrimSpace(r.Header.Get(userHeader))
			if username == "" {
				log.Tracef("[missing user] [identity middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				return
			}

			ctx := ContextWithUsername(r.Context(), username)
			if cookie := r.Header.Get("Cookie"); cookie != "" {
				ctx = api.ContextWithCredentials(ctx, cookie)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
