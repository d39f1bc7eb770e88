package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/MrJamesThe3rd/buxfer/internal/errs"
	"github.com/MrJamesThe3rd/buxfer/internal/household"
)

type contextKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity put in ctx by Middleware.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

// MemberFrom returns the signed-in member or errs.ErrUnauthenticated.
func MemberFrom(ctx context.Context) (household.Member, error) {
	id, ok := FromContext(ctx)
	if !ok {
		return "", errs.ErrUnauthenticated
	}

	return id.Member, nil
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// Middleware rejects requests without a valid session by calling onError, and stores the
// caller's identity in the request context otherwise.
func Middleware(s *Service, onError func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				onError(w, r, errs.ErrUnauthenticated)
				return
			}

			id, err := s.CurrentUser(r.Context(), token)
			if err != nil {
				onError(w, r, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
